package fetch

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"mime/quotedprintable"
	"net/mail"
	"strings"
	"time"

	"github.com/emersion/go-imap/v2"
	"github.com/emersion/go-imap/v2/imapclient"

	"leadradar-engine/internal/domain"
)

// Email is the optional alert-mailbox source: it scans recent messages in an
// IMAP mailbox (read-only, BODY.PEEK so nothing gets marked seen) and turns
// each matching one into a RawItem. Disabled unless configured.
type Email struct {
	Host       string
	Port       int
	Username   string
	Password   string
	Mailbox    string
	SubjectAny []string
	Window     domain.Window
}

func (e *Email) Name() string { return "email" }

func (e *Email) Fetch(ctx context.Context) (Result, error) {
	res := Result{Source: "Email"}

	if e.Host == "" || e.Username == "" || e.Password == "" {
		return res, errors.New("email source missing imap host/username/password")
	}

	addr := e.Host
	if !strings.Contains(addr, ":") {
		port := e.Port
		if port == 0 {
			port = 993
		}
		addr = fmt.Sprintf("%s:%d", addr, port)
	}

	c, err := imapclient.DialTLS(addr, &imapclient.Options{
		TLSConfig: &tls.Config{MinVersion: tls.VersionTLS12, ServerName: e.Host},
	})
	if err != nil {
		return res, fmt.Errorf("imap dial tls: %w", err)
	}
	defer func() {
		_ = c.Logout().Wait()
		_ = c.Close()
	}()

	go func() {
		<-ctx.Done()
		_ = c.Close()
	}()

	if err := c.Login(e.Username, e.Password).Wait(); err != nil {
		return res, fmt.Errorf("imap login: %w", err)
	}

	mailbox := e.Mailbox
	if mailbox == "" {
		mailbox = "INBOX"
	}
	if _, err := c.Select(mailbox, &imap.SelectOptions{ReadOnly: true}).Wait(); err != nil {
		return res, fmt.Errorf("imap select %q: %w", mailbox, err)
	}

	searchData, err := c.UIDSearch(&imap.SearchCriteria{Since: e.Window.Earliest}, nil).Wait()
	if err != nil {
		return res, fmt.Errorf("imap uid search: %w", err)
	}
	uids := searchData.AllUIDs()
	if len(uids) == 0 {
		return res, nil
	}

	bodyAll := &imap.FetchItemBodySection{
		Specifier: imap.PartSpecifierNone,
		Peek:      true,
	}
	fetchCmd := c.Fetch(imap.UIDSetNum(uids...), &imap.FetchOptions{
		UID:         true,
		Envelope:    true,
		BodySection: []*imap.FetchItemBodySection{bodyAll},
	})
	defer func() { _ = fetchCmd.Close() }()

	for {
		msgData := fetchCmd.Next()
		if msgData == nil {
			break
		}
		buf, err := msgData.Collect()
		if err != nil {
			return res, fmt.Errorf("imap fetch collect: %w", err)
		}

		var subject, from string
		var created *time.Time
		if buf.Envelope != nil {
			subject = buf.Envelope.Subject
			from = envelopeFrom(buf.Envelope.From)
			if !buf.Envelope.Date.IsZero() {
				d := buf.Envelope.Date.UTC()
				created = &d
			}
		}
		if !e.Window.Within(created) {
			continue
		}
		if len(e.SubjectAny) > 0 && !containsAnyCI(subject, e.SubjectAny) {
			continue
		}

		body := ""
		if raw := buf.FindBodySection(bodyAll); raw != nil {
			body = messageText(raw)
		}

		res.Items = append(res.Items, domain.RawItem{
			Source:    res.Source,
			Title:     subject,
			Body:      body,
			Author:    from,
			CreatedAt: created,
		})
	}

	if err := fetchCmd.Close(); err != nil {
		return res, fmt.Errorf("imap fetch close: %w", err)
	}
	return res, nil
}

func envelopeFrom(addrs []imap.Address) string {
	for i := range addrs {
		a := &addrs[i]
		if addr := strings.TrimSpace(a.Addr()); addr != "" {
			return addr
		}
		if name := strings.TrimSpace(a.Name); name != "" {
			return name
		}
	}
	return ""
}

func containsAnyCI(s string, any []string) bool {
	low := strings.ToLower(s)
	for _, a := range any {
		a = strings.ToLower(strings.TrimSpace(a))
		if a != "" && strings.Contains(low, a) {
			return true
		}
	}
	return false
}

// messageText pulls a plain-text rendition out of raw RFC822 bytes: the
// text/plain part when there is one, otherwise flattened text/html.
func messageText(raw []byte) string {
	msg, err := mail.ReadMessage(bytes.NewReader(raw))
	if err != nil {
		return CleanText(string(raw))
	}
	body, _ := io.ReadAll(io.LimitReader(msg.Body, 6<<20))
	plain, htmlPart := mimeParts(msg.Header.Get("Content-Type"), msg.Header.Get("Content-Transfer-Encoding"), body)
	if plain != "" {
		return CleanText(plain)
	}
	if htmlPart != "" {
		return HTMLToText(htmlPart)
	}
	return CleanText(string(body))
}

func mimeParts(contentType, transferEncoding string, body []byte) (plain, htmlPart string) {
	cte := strings.ToLower(strings.TrimSpace(transferEncoding))
	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return string(decodeCTE(body, cte)), ""
	}
	mediaType = strings.ToLower(mediaType)

	if strings.HasPrefix(mediaType, "multipart/") {
		boundary := params["boundary"]
		if boundary == "" {
			return string(decodeCTE(body, cte)), ""
		}
		mr := multipart.NewReader(bytes.NewReader(body), boundary)
		for {
			p, err := mr.NextPart()
			if err != nil {
				break
			}
			b, _ := io.ReadAll(io.LimitReader(p, 6<<20))
			pl, ht := mimeParts(p.Header.Get("Content-Type"), p.Header.Get("Content-Transfer-Encoding"), b)
			if len(pl) > len(plain) {
				plain = pl
			}
			if len(ht) > len(htmlPart) {
				htmlPart = ht
			}
		}
		return plain, htmlPart
	}

	s := string(decodeCTE(body, cte))
	if strings.HasPrefix(mediaType, "text/html") {
		return "", s
	}
	return s, ""
}

func decodeCTE(b []byte, cte string) []byte {
	switch cte {
	case "base64":
		out, _ := io.ReadAll(io.LimitReader(base64.NewDecoder(base64.StdEncoding, bytes.NewReader(b)), 6<<20))
		return out
	case "quoted-printable":
		out, _ := io.ReadAll(io.LimitReader(quotedprintable.NewReader(bytes.NewReader(b)), 6<<20))
		return out
	default:
		return b
	}
}
