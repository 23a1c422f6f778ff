// Package disposable answers whether an email domain is a known throwaway
// mailbox provider. The list is a small fixed seed; it is deliberately NOT
// consulted during validation — it is exposed only as a standalone lookup
// until a real list source is wired in.
package disposable

import "strings"

var disposableSet = map[string]struct{}{
	"tempmail.com":      {},
	"throwaway.email":   {},
	"guerrillamail.com": {},
	"mailinator.com":    {},
}

// Domain extracts the domain part of an email address, lowercased.
// Returns "" when the address has no "@".
func Domain(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return ""
	}
	return strings.ToLower(email[at+1:])
}

// IsDisposable returns whether the given domain is a known disposable domain.
func IsDisposable(domain string) bool {
	_, ok := disposableSet[strings.ToLower(domain)]
	return ok
}

// Count returns the number of domains currently on the list.
func Count() int {
	return len(disposableSet)
}
