// Package domain contains the core business types for IntraMate.
//
// These types have no dependencies on infrastructure. They model the
// client's view of the remote knowledge base: documents, the chat
// transcript, source attribution, upload batches, and credentials.
package domain
