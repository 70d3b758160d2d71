// Package idhash derives deterministic identifiers for recordings and
// their persisted streams.
package idhash

import (
	"crypto/sha256"
	"fmt"

	"github.com/mr-tron/base58"

	"eye-stream-lab/internal/domain"
)

// ComputeRecordingID computes a deterministic recording_id.
// Formula: base58(SHA256(wearer|device|start_ts)[:20])
func ComputeRecordingID(wearer, device string, startTs int64) string {
	data := fmt.Sprintf("%s|%s|%d", wearer, device, startTs)
	hash := sha256.Sum256([]byte(data))
	return base58.Encode(hash[:20])
}

// ComputeStreamID computes a deterministic stream_id scoped to one
// recording and stream kind.
// Formula: base58(SHA256(recording_id|kind)[:20])
func ComputeStreamID(recordingID string, kind domain.StreamKind) string {
	data := fmt.Sprintf("%s|%s", recordingID, string(kind))
	hash := sha256.Sum256([]byte(data))
	return base58.Encode(hash[:20])
}
