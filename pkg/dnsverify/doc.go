// Package dnsverify checks the DNS records a sending domain needs before a
// transactional-email provider will accept mail from it.
//
// Providers reject mail from unverified domains (HTTP 422 from the send
// API). VerifySendingDomain lets an application surface the misconfiguration
// ahead of time:
//
//	v := dnsverify.New("resend")
//	if err := v.VerifySendingDomain(ctx, "example.com"); err != nil {
//		// point the user at their DNS setup
//	}
//
// The check looks for an SPF policy (a TXT record starting with "v=spf1")
// on the domain itself and a DKIM key on the provider's selector
// subdomain. Failure modes map to sentinel errors: ErrInvalidDomain,
// ErrNoSPFRecord, ErrNoDKIMRecord, ErrDNSLookupFailed.
package dnsverify
