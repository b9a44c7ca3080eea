package supabase

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
)

// Prompter hands the consent URL to the user and returns the authorization code.
type Prompter interface {
	PromptCode(ctx context.Context, authURL string) (string, error)
}

// LinePrompter prints the URL to Out and reads the code as one line from In.
type LinePrompter struct {
	In  io.Reader
	Out io.Writer
}

// PromptCode implements Prompter.
func (p LinePrompter) PromptCode(ctx context.Context, authURL string) (string, error) {
	fmt.Fprintf(p.Out, "Open this URL in a browser and sign in:\n\n  %s\n\nPaste the code from the redirect URL: ", authURL)

	type result struct {
		line string
		err  error
	}
	ch := make(chan result, 1)
	go func() {
		line, err := bufio.NewReader(p.In).ReadString('\n')
		ch <- result{line, err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-ch:
		if r.err != nil && !errors.Is(r.err, io.EOF) {
			return "", r.err
		}
		code := extractCode(strings.TrimSpace(r.line))
		if code == "" {
			return "", errors.New("no authorization code entered")
		}
		return code, nil
	}
}

// extractCode accepts either the bare code or the whole redirect URL.
func extractCode(s string) string {
	if !strings.Contains(s, "code=") {
		return s
	}
	u, err := url.Parse(s)
	if err != nil {
		return s
	}
	if c := u.Query().Get("code"); c != "" {
		return c
	}
	return s
}
