package edgegrid

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Timestamp layout required by the EdgeGrid scheme, always +0000.
const timestampLayout = "20060102T15:04:05+0000"

// Signer produces EG1-HMAC-SHA256 Authorization headers for a credential set.
type Signer struct {
	config Config

	// Overridable for deterministic tests.
	now   func() time.Time
	nonce func() string
}

// NewSigner creates a Signer for the given credentials.
func NewSigner(cfg Config) *Signer {
	return &Signer{
		config: cfg,
		now:    time.Now,
		nonce:  func() string { return uuid.NewString() },
	}
}

// Sign sets the Authorization header on req. body is the request payload
// (nil for GET/DELETE); it must match what is actually sent because POST
// bodies participate in the signature.
func (s *Signer) Sign(req *http.Request, body []byte) {
	timestamp := s.now().UTC().Format(timestampLayout)
	nonce := s.nonce()

	authHeader := fmt.Sprintf(
		"EG1-HMAC-SHA256 client_token=%s;access_token=%s;timestamp=%s;nonce=%s;",
		s.config.ClientToken, s.config.AccessToken, timestamp, nonce,
	)

	signature := s.signature(req, body, timestamp, authHeader)
	req.Header.Set("Authorization", authHeader+"signature="+signature)
}

// signature computes the request signature: the data-to-sign is a
// tab-joined canonical request, signed with a key derived from the client
// secret and the timestamp.
func (s *Signer) signature(req *http.Request, body []byte, timestamp, authHeader string) string {
	signingKey := base64HMAC(s.config.ClientSecret, timestamp)

	dataToSign := strings.Join([]string{
		strings.ToUpper(req.Method),
		req.URL.Scheme,
		req.URL.Host,
		relativeURL(req),
		"", // no signed headers
		s.contentHash(req.Method, body),
		authHeader,
	}, "\t")

	return base64HMAC(signingKey, dataToSign)
}

// contentHash returns the base64 SHA-256 of the body for POST requests,
// truncated to MaxBody bytes. Other methods hash nothing, per the scheme.
func (s *Signer) contentHash(method string, body []byte) string {
	if strings.ToUpper(method) != http.MethodPost || len(body) == 0 {
		return ""
	}
	maxBody := s.config.MaxBody
	if maxBody <= 0 {
		maxBody = DefaultMaxBody
	}
	if len(body) > maxBody {
		body = body[:maxBody]
	}
	sum := sha256.Sum256(body)
	return base64.StdEncoding.EncodeToString(sum[:])
}

// relativeURL returns the path plus raw query, the form the scheme signs.
func relativeURL(req *http.Request) string {
	rel := req.URL.Path
	if rel == "" {
		rel = "/"
	}
	if req.URL.RawQuery != "" {
		rel += "?" + req.URL.RawQuery
	}
	return rel
}

func base64HMAC(key, data string) string {
	mac := hmac.New(sha256.New, []byte(key))
	mac.Write([]byte(data))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
