package dnsverify

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
)

var (
	ErrDNSLookupFailed = errors.New("dns lookup failed")
	ErrNoSPFRecord     = errors.New("no spf record found")
	ErrNoDKIMRecord    = errors.New("no dkim record found")
	ErrInvalidDomain   = errors.New("invalid domain")
)

// txtResolver is the subset of net.Resolver used here; tests inject a fake.
type txtResolver interface {
	LookupTXT(ctx context.Context, name string) ([]string, error)
}

// Verifier checks the DNS setup of a sending domain.
type Verifier struct {
	resolver txtResolver
	selector string
}

// New creates a Verifier for the given DKIM selector (e.g. "resend").
func New(selector string) *Verifier {
	return &Verifier{
		resolver: &net.Resolver{},
		selector: selector,
	}
}

// WithResolver replaces the DNS resolver. Intended for tests.
func (v *Verifier) WithResolver(resolver txtResolver) *Verifier {
	if resolver != nil {
		v.resolver = resolver
	}
	return v
}

// VerifySendingDomain checks that the domain publishes an SPF policy and a
// DKIM key under the configured selector. Returns nil when both are
// present, otherwise the first failing check's sentinel error.
func (v *Verifier) VerifySendingDomain(ctx context.Context, domain string) error {
	domain = strings.ToLower(strings.TrimSpace(domain))
	if domain == "" || !strings.Contains(domain, ".") {
		return ErrInvalidDomain
	}

	if err := v.checkSPF(ctx, domain); err != nil {
		return err
	}
	return v.checkDKIM(ctx, domain)
}

func (v *Verifier) checkSPF(ctx context.Context, domain string) error {
	records, err := v.lookup(ctx, domain, ErrNoSPFRecord)
	if err != nil {
		return err
	}
	for _, record := range records {
		if strings.HasPrefix(record, "v=spf1") {
			return nil
		}
	}
	return ErrNoSPFRecord
}

func (v *Verifier) checkDKIM(ctx context.Context, domain string) error {
	name := v.selector + "._domainkey." + domain
	records, err := v.lookup(ctx, name, ErrNoDKIMRecord)
	if err != nil {
		return err
	}
	for _, record := range records {
		if strings.Contains(record, "k=") || strings.Contains(record, "p=") {
			return nil
		}
	}
	return ErrNoDKIMRecord
}

// lookup wraps a TXT query, translating NXDOMAIN into the check-specific
// sentinel and anything else into ErrDNSLookupFailed.
func (v *Verifier) lookup(ctx context.Context, name string, notFound error) ([]string, error) {
	records, err := v.resolver.LookupTXT(ctx, name)
	if err != nil {
		var dnsErr *net.DNSError
		if errors.As(err, &dnsErr) && dnsErr.IsNotFound {
			return nil, notFound
		}
		return nil, fmt.Errorf("%w: %v", ErrDNSLookupFailed, err)
	}
	return records, nil
}
