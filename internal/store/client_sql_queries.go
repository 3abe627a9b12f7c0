// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	getPrintCursor = `
		SELECT since_id
		FROM print_cursor
		WHERE id = 1;`

	savePrintCursor = `
		UPDATE print_cursor
		SET since_id = MAX(since_id, ?)
		WHERE id = 1;`

	isMessagePrinted = `
		SELECT EXISTS (
			SELECT 1
			FROM printed_messages
			WHERE message_id = ?
		);`

	recordPrintedMessage = `
		INSERT OR REPLACE INTO printed_messages (
			message_id,
			printed_at
		) VALUES (?, ?);`
)
