package dnsverify

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeResolver serves canned TXT records per lookup name.
type fakeResolver struct {
	records map[string][]string
	err     error
}

func (f *fakeResolver) LookupTXT(_ context.Context, name string) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	records, ok := f.records[name]
	if !ok {
		return nil, &net.DNSError{Err: "no such host", Name: name, IsNotFound: true}
	}
	return records, nil
}

func TestVerifySendingDomain_Success(t *testing.T) {
	t.Parallel()

	v := New("resend").WithResolver(&fakeResolver{records: map[string][]string{
		"example.com":                   {"v=spf1 include:amazonses.com ~all"},
		"resend._domainkey.example.com": {"k=rsa; p=MIGfMA0GCSq"},
	}})

	require.NoError(t, v.VerifySendingDomain(context.Background(), "example.com"))
}

func TestVerifySendingDomain_NormalizesInput(t *testing.T) {
	t.Parallel()

	v := New("resend").WithResolver(&fakeResolver{records: map[string][]string{
		"example.com":                   {"v=spf1 -all"},
		"resend._domainkey.example.com": {"p=abc"},
	}})

	require.NoError(t, v.VerifySendingDomain(context.Background(), "  Example.COM "))
}

func TestVerifySendingDomain_InvalidDomain(t *testing.T) {
	t.Parallel()

	v := New("resend").WithResolver(&fakeResolver{})

	require.ErrorIs(t, v.VerifySendingDomain(context.Background(), ""), ErrInvalidDomain)
	require.ErrorIs(t, v.VerifySendingDomain(context.Background(), "localhost"), ErrInvalidDomain)
}

func TestVerifySendingDomain_MissingSPF(t *testing.T) {
	t.Parallel()

	v := New("resend").WithResolver(&fakeResolver{records: map[string][]string{
		"example.com":                   {"some-other-record"},
		"resend._domainkey.example.com": {"p=abc"},
	}})

	require.ErrorIs(t, v.VerifySendingDomain(context.Background(), "example.com"), ErrNoSPFRecord)
}

func TestVerifySendingDomain_MissingDKIM(t *testing.T) {
	t.Parallel()

	v := New("resend").WithResolver(&fakeResolver{records: map[string][]string{
		"example.com": {"v=spf1 -all"},
	}})

	require.ErrorIs(t, v.VerifySendingDomain(context.Background(), "example.com"), ErrNoDKIMRecord)
}

func TestVerifySendingDomain_LookupFailure(t *testing.T) {
	t.Parallel()

	v := New("resend").WithResolver(&fakeResolver{err: errors.New("network down")})

	err := v.VerifySendingDomain(context.Background(), "example.com")
	require.ErrorIs(t, err, ErrDNSLookupFailed)
}
