// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 FCS Project Authors

package models

import "strconv"

// KeyContext is the ordered pair of identifiers a derived key is scoped to:
// (sender, receiver) for messages and media, (sender, group) for shared
// posts, (order, user) for marketplace transactions.
//
// Ordering is significant. Contexts (1,2) and (2,1) derive different keys,
// so an envelope encrypted for one cannot be opened with the other.
type KeyContext struct {
	PartyA int64
	PartyB int64
}

// NewKeyContext builds the context for the given ordered identifier pair.
func NewKeyContext(partyA, partyB int64) KeyContext {
	return KeyContext{PartyA: partyA, PartyB: partyB}
}

// Label renders the context in its canonical string form "{a}-{b}",
// the value used as the key-derivation salt.
func (c KeyContext) Label() string {
	return strconv.FormatInt(c.PartyA, 10) + "-" + strconv.FormatInt(c.PartyB, 10)
}

// String implements fmt.Stringer and is safe for logging: the label contains
// record identifiers only, never key material.
func (c KeyContext) String() string {
	return c.Label()
}
