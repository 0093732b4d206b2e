package utils

import (
	"crypto/rand"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	ticketPrefix    = "WM"
	ticketAlphabet  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	ticketSuffixLen = 4
)

var ticketShape = regexp.MustCompile(`^` + ticketPrefix + `-[0-9A-Z]+-[0-9A-Z]{` + strconv.Itoa(ticketSuffixLen) + `}$`)

// IssueTicket generates a report ticket number of the form
// WM-<base36 timestamp>-<random suffix>. The timestamp is nanosecond
// resolution: with a 4-character suffix a coarser stamp would collide under
// concurrent issuance bursts. The suffix comes from crypto/rand.
func IssueTicket() (string, error) {
	suffix, err := randomTicketSuffix(ticketSuffixLen)
	if err != nil {
		return "", fmt.Errorf("failed to issue ticket: %w", err)
	}
	stamp := strings.ToUpper(strconv.FormatInt(time.Now().UnixNano(), 36))
	return fmt.Sprintf("%s-%s-%s", ticketPrefix, stamp, suffix), nil
}

// IsTicketShaped reports whether s looks like an issued ticket number.
// Display-level check only, it does not prove the ticket exists.
func IsTicketShaped(s string) bool {
	return ticketShape.MatchString(s)
}

// randomTicketSuffix returns length characters drawn uniformly from the
// ticket alphabet using a cryptographically secure source.
func randomTicketSuffix(length int) (string, error) {
	randomBytes := make([]byte, length)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	out := make([]byte, length)
	for i, b := range randomBytes {
		out[i] = ticketAlphabet[int(b)%len(ticketAlphabet)]
	}
	return string(out), nil
}
