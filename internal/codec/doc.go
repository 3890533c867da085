// Package codec serializes batches of phantom identities.
//
// JSON and YAML round-trip through Parse. The pcap format renders each
// phantom as a synthetic SYN-ACK frame and is write-only apart from
// ReadFrames. The text format is a human-readable table.
package codec
