package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	perr "gitinsight/internal/platform/errors"
)

// Profile fetches a user profile as the raw GitHub bag
func (c *Client) Profile(ctx context.Context, username string) (map[string]any, error) {
	path := "/users/" + url.PathEscape(username)
	resp, err := c.do(ctx, path, acceptJSON)
	if err != nil {
		return nil, err
	}
	defer c.drainClose(resp.Body, path)

	if resp.StatusCode != http.StatusOK {
		return nil, statusErr(resp, "user "+username)
	}

	var out map[string]any
	if err := decodeBody(resp.Body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Repos lists a user's repositories sorted by last update
func (c *Client) Repos(ctx context.Context, username string) ([]map[string]any, error) {
	path := fmt.Sprintf("/users/%s/repos?sort=updated&per_page=%d", url.PathEscape(username), c.opts.PageSize)
	resp, err := c.do(ctx, path, acceptJSON)
	if err != nil {
		return nil, err
	}
	defer c.drainClose(resp.Body, path)

	if resp.StatusCode != http.StatusOK {
		return nil, statusErr(resp, "user "+username)
	}

	var out []map[string]any
	if err := decodeBody(resp.Body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Readme fetches the rendered-raw README for a repo
// a missing README is reported as ok=false with a nil error, not as a fault
func (c *Client) Readme(ctx context.Context, owner, repo string) (string, bool, error) {
	path := fmt.Sprintf("/repos/%s/%s/readme", url.PathEscape(owner), url.PathEscape(repo))
	resp, err := c.do(ctx, path, acceptRaw)
	if err != nil {
		return "", false, err
	}
	defer c.drainClose(resp.Body, path)

	if resp.StatusCode == http.StatusNotFound {
		return "", false, nil
	}
	if resp.StatusCode != http.StatusOK {
		return "", false, statusErr(resp, fmt.Sprintf("readme %s/%s", owner, repo))
	}

	b, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", false, perr.Wrapf(err, perr.ErrorCodeUnavailable, "github read body failed")
	}
	return string(b), true, nil
}

func decodeBody(r io.Reader, out any) error {
	b, err := io.ReadAll(io.LimitReader(r, 1<<20))
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnavailable, "github read body failed")
	}
	if err := json.Unmarshal(b, out); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnknown, "github decode body failed")
	}
	return nil
}
