package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SynthesizedIDPrefix marks message ids generated on the client.
const SynthesizedIDPrefix = "local-"

var messageNamespace = uuid.MustParse("6f1c2b0e-5d7a-4c3e-9a51-2f0d8e4b7c19")

// SynthesizeMessageID derives a stable id for a message that arrived without one.
// Identical frames (same room, sender, text and second) map to the same id.
func SynthesizeMessageID(roomID, senderID, text string, ts time.Time) string {
	key := fmt.Sprintf("%s|%s|%s|%d", roomID, senderID, text, ts.Unix())
	return SynthesizedIDPrefix + uuid.NewSHA1(messageNamespace, []byte(key)).String()
}

func IsSynthesizedID(id string) bool {
	return strings.HasPrefix(id, SynthesizedIDPrefix)
}

// NewLocalID returns a fresh id for an optimistic message that has not been confirmed by the server yet.
func NewLocalID() string {
	return SynthesizedIDPrefix + uuid.NewString()
}
