package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/config"
	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/logger"
	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/utils"
	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/models"
	"github.com/go-resty/resty/v2"
)

// hashHeader mirrors the header the server's integrity middleware checks.
const hashHeader = "HashSHA256"

type httpServerAdapter struct {
	client *utils.HTTPClient

	// hashKey signs mutating request bodies. Empty disables signing.
	hashKey string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, hashKey: appCfg.HashKey, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Version implements [ServerAdapter]. It GETs /api/version and returns the
// plain-text body.
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(string(resp.Body())), nil
}

// SendMessage implements [ServerAdapter]. It POSTs the signed request body to
// POST /api/messages and decodes the created view.
func (h *httpServerAdapter) SendMessage(ctx context.Context, req models.SendMessageRequest) (models.MessageView, error) {
	var view models.MessageView

	resp, err := h.signedJSONRequest(ctx, req).
		SetResult(&view).
		Post("/api/messages")
	if err != nil {
		return models.MessageView{}, fmt.Errorf("send message request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MessageView{}, err
	}

	return view, nil
}

// EditMessage implements [ServerAdapter]. It PUTs the signed request body to
// PUT /api/messages/{id} and decodes the updated view.
func (h *httpServerAdapter) EditMessage(ctx context.Context, id int64, req models.EditMessageRequest) (models.MessageView, error) {
	var view models.MessageView

	resp, err := h.signedJSONRequest(ctx, req).
		SetResult(&view).
		Put("/api/messages/" + strconv.FormatInt(id, 10))
	if err != nil {
		return models.MessageView{}, fmt.Errorf("edit message request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MessageView{}, err
	}

	return view, nil
}

// DeleteMessage implements [ServerAdapter]. It sends
// DELETE /api/messages/{id}?sender_id=N.
func (h *httpServerAdapter) DeleteMessage(ctx context.Context, id, senderID int64) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("sender_id", strconv.FormatInt(senderID, 10)).
		Delete("/api/messages/" + strconv.FormatInt(id, 10))
	if err != nil {
		return fmt.Errorf("delete message request: %w", err)
	}

	return mapHTTPError(resp)
}

// GetMessage implements [ServerAdapter]. It GETs /api/messages/{id}. On
// HTTP 422 the placeholder view travels in the body; it is decoded and
// returned alongside the wrapped [ErrUnprocessable].
func (h *httpServerAdapter) GetMessage(ctx context.Context, id int64) (models.MessageView, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/messages/" + strconv.FormatInt(id, 10))
	if err != nil {
		return models.MessageView{}, fmt.Errorf("get message request: %w", err)
	}

	var view models.MessageView
	if mappedErr := mapHTTPError(resp); mappedErr != nil {
		if errors.Is(mappedErr, ErrUnprocessable) {
			if decodeErr := json.Unmarshal(resp.Body(), &view); decodeErr == nil {
				return view, mappedErr
			}
		}
		return models.MessageView{}, mappedErr
	}

	if err = json.Unmarshal(resp.Body(), &view); err != nil {
		return models.MessageView{}, fmt.Errorf("decode message response: %w", err)
	}

	return view, nil
}

// GetConversation implements [ServerAdapter]. It GETs /api/conversations
// with user_a, user_b and an optional limit.
func (h *httpServerAdapter) GetConversation(ctx context.Context, firstUserID, secondUserID int64, limit uint64) (models.ConversationResponse, error) {
	var conversation models.ConversationResponse

	req := h.client.R().
		SetContext(ctx).
		SetQueryParam("user_a", strconv.FormatInt(firstUserID, 10)).
		SetQueryParam("user_b", strconv.FormatInt(secondUserID, 10)).
		SetResult(&conversation)
	if limit > 0 {
		req.SetQueryParam("limit", strconv.FormatUint(limit, 10))
	}

	resp, err := req.Get("/api/conversations")
	if err != nil {
		return models.ConversationResponse{}, fmt.Errorf("get conversation request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ConversationResponse{}, err
	}

	return conversation, nil
}

// GetLatestConversations implements [ServerAdapter]. It GETs
// /api/conversations/latest for one user.
func (h *httpServerAdapter) GetLatestConversations(ctx context.Context, userID int64) (models.ConversationResponse, error) {
	var conversation models.ConversationResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("user_id", strconv.FormatInt(userID, 10)).
		SetResult(&conversation).
		Get("/api/conversations/latest")
	if err != nil {
		return models.ConversationResponse{}, fmt.Errorf("get latest conversations request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ConversationResponse{}, err
	}

	return conversation, nil
}

// SharePost implements [ServerAdapter]. It POSTs the signed request body to
// POST /api/posts/shares.
func (h *httpServerAdapter) SharePost(ctx context.Context, req models.SharePostRequest) (models.PostShareView, error) {
	var view models.PostShareView

	resp, err := h.signedJSONRequest(ctx, req).
		SetResult(&view).
		Post("/api/posts/shares")
	if err != nil {
		return models.PostShareView{}, fmt.Errorf("share post request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PostShareView{}, err
	}

	return view, nil
}

// GetPostShare implements [ServerAdapter]. It GETs /api/posts/shares/{id}
// with the same 422 placeholder handling as [httpServerAdapter.GetMessage].
func (h *httpServerAdapter) GetPostShare(ctx context.Context, id int64) (models.PostShareView, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/posts/shares/" + strconv.FormatInt(id, 10))
	if err != nil {
		return models.PostShareView{}, fmt.Errorf("get post share request: %w", err)
	}

	var view models.PostShareView
	if mappedErr := mapHTTPError(resp); mappedErr != nil {
		if errors.Is(mappedErr, ErrUnprocessable) {
			if decodeErr := json.Unmarshal(resp.Body(), &view); decodeErr == nil {
				return view, mappedErr
			}
		}
		return models.PostShareView{}, mappedErr
	}

	if err = json.Unmarshal(resp.Body(), &view); err != nil {
		return models.PostShareView{}, fmt.Errorf("decode post share response: %w", err)
	}

	return view, nil
}

// GetGroupFeed implements [ServerAdapter]. It GETs /api/groups/{id}/feed
// with an optional limit.
func (h *httpServerAdapter) GetGroupFeed(ctx context.Context, groupID int64, limit uint64) (models.FeedResponse, error) {
	var feed models.FeedResponse

	req := h.client.R().
		SetContext(ctx).
		SetResult(&feed)
	if limit > 0 {
		req.SetQueryParam("limit", strconv.FormatUint(limit, 10))
	}

	resp, err := req.Get("/api/groups/" + strconv.FormatInt(groupID, 10) + "/feed")
	if err != nil {
		return models.FeedResponse{}, fmt.Errorf("get group feed request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.FeedResponse{}, err
	}

	return feed, nil
}

// RecordTransaction implements [ServerAdapter]. It POSTs the signed request
// body to POST /api/transactions. Returns [ErrConflict] (wrapped) when the
// (order, user) pair was already recorded.
func (h *httpServerAdapter) RecordTransaction(ctx context.Context, req models.RecordTransactionRequest) (models.TransactionView, error) {
	var view models.TransactionView

	resp, err := h.signedJSONRequest(ctx, req).
		SetResult(&view).
		Post("/api/transactions")
	if err != nil {
		return models.TransactionView{}, fmt.Errorf("record transaction request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TransactionView{}, err
	}

	return view, nil
}

// GetTransaction implements [ServerAdapter]. It GETs /api/transactions with
// order_id and user_id, with 422 placeholder handling.
func (h *httpServerAdapter) GetTransaction(ctx context.Context, orderID, userID int64) (models.TransactionView, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("order_id", strconv.FormatInt(orderID, 10)).
		SetQueryParam("user_id", strconv.FormatInt(userID, 10)).
		Get("/api/transactions")
	if err != nil {
		return models.TransactionView{}, fmt.Errorf("get transaction request: %w", err)
	}

	var view models.TransactionView
	if mappedErr := mapHTTPError(resp); mappedErr != nil {
		if errors.Is(mappedErr, ErrUnprocessable) {
			if decodeErr := json.Unmarshal(resp.Body(), &view); decodeErr == nil {
				return view, mappedErr
			}
		}
		return models.TransactionView{}, mappedErr
	}

	if err = json.Unmarshal(resp.Body(), &view); err != nil {
		return models.TransactionView{}, fmt.Errorf("decode transaction response: %w", err)
	}

	return view, nil
}

// GetUserHistory implements [ServerAdapter]. It GETs
// /api/users/{id}/transactions with an optional limit.
func (h *httpServerAdapter) GetUserHistory(ctx context.Context, userID int64, limit uint64) (models.HistoryResponse, error) {
	var history models.HistoryResponse

	req := h.client.R().
		SetContext(ctx).
		SetResult(&history)
	if limit > 0 {
		req.SetQueryParam("limit", strconv.FormatUint(limit, 10))
	}

	resp, err := req.Get("/api/users/" + strconv.FormatInt(userID, 10) + "/transactions")
	if err != nil {
		return models.HistoryResponse{}, fmt.Errorf("get user history request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.HistoryResponse{}, err
	}

	return history, nil
}

// UploadMedia implements [ServerAdapter]. It POSTs the raw attachment bytes
// to POST /api/media with the content type preserved and the body signed.
func (h *httpServerAdapter) UploadMedia(ctx context.Context, senderID, receiverID int64, contentType string, data []byte) (models.MediaUploadResponse, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	var uploaded models.MediaUploadResponse

	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", contentType).
		SetQueryParam("sender_id", strconv.FormatInt(senderID, 10)).
		SetQueryParam("receiver_id", strconv.FormatInt(receiverID, 10)).
		SetBody(data).
		SetResult(&uploaded)
	h.signBody(req, data)

	resp, err := req.Post("/api/media")
	if err != nil {
		return models.MediaUploadResponse{}, fmt.Errorf("upload media request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MediaUploadResponse{}, err
	}

	return uploaded, nil
}

// DownloadMedia implements [ServerAdapter]. It GETs /api/media/{id} and
// returns the decrypted bytes plus the content type reported by the server.
func (h *httpServerAdapter) DownloadMedia(ctx context.Context, id int64) ([]byte, string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/media/" + strconv.FormatInt(id, 10))
	if err != nil {
		return nil, "", fmt.Errorf("download media request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, "", err
	}

	return resp.Body(), resp.Header().Get("Content-Type"), nil
}

// DeleteMedia implements [ServerAdapter]. It sends DELETE /api/media/{id}.
func (h *httpServerAdapter) DeleteMedia(ctx context.Context, id int64) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Delete("/api/media/" + strconv.FormatInt(id, 10))
	if err != nil {
		return fmt.Errorf("delete media request: %w", err)
	}

	return mapHTTPError(resp)
}

// signedJSONRequest marshals body itself so the exact bytes on the wire and
// the bytes under the integrity hash cannot drift apart.
func (h *httpServerAdapter) signedJSONRequest(ctx context.Context, body any) *resty.Request {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")

	payload, err := json.Marshal(body)
	if err != nil {
		// resty surfaces the marshal failure when the request is sent
		req.SetBody(body)
		return req
	}

	req.SetBody(payload)
	h.signBody(req, payload)
	return req
}

func (h *httpServerAdapter) signBody(req *resty.Request, payload []byte) {
	if h.hashKey == "" {
		return
	}
	req.SetHeader(hashHeader, utils.HashString(string(payload), h.hashKey))
}
