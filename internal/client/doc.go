// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the print station runtime.
//
// It logs the station in to the board API, prints whatever arrived while it
// was offline and then keeps polling for new messages until its context is
// cancelled.
package client
