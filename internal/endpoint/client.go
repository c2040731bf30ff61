package endpoint

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"ctstream.dev/internal/certparse"
	"ctstream.dev/internal/model"
	"ctstream.dev/internal/wire"
)

// Client issues the two RFC 6962 §4 calls a streaming reader needs
// against a single CT log, through a shared *http.Client.
type Client struct {
	HTTP    *http.Client
	BaseURL string
}

// New builds a Client, validating baseURL eagerly so a malformed URL
// surfaces as a *URLError at construction rather than on first use.
func New(httpClient *http.Client, baseURL string) (*Client, error) {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, &URLError{URL: baseURL, Err: err}
	}
	if parsed.Host == "" {
		return nil, &URLError{URL: baseURL, Err: fmt.Errorf("missing host")}
	}
	return &Client{HTTP: httpClient, BaseURL: baseURL}, nil
}

type sthEnvelope struct {
	TreeSize uint64 `json:"tree_size"`
}

type entriesEnvelope struct {
	Entries []struct {
		LeafInput string `json:"leaf_input"`
		ExtraData string `json:"extra_data"`
	} `json:"entries"`
}

// GetLogSize issues GET {base}/ct/v1/get-sth and extracts tree_size.
func (c *Client) GetLogSize(ctx context.Context) (Response[uint64], error) {
	resp, err := c.get(ctx, "ct/v1/get-sth", nil)
	if err != nil {
		return Response[uint64]{}, err
	}
	defer resp.Body.Close()

	return classify(resp, func() (uint64, error) {
		var env sthEnvelope
		if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
			return 0, wire.NewParseError("get-sth body: " + err.Error())
		}
		return env.TreeSize, nil
	})
}

// GetLogEntries issues GET {base}/ct/v1/get-entries?start=start&end=start+count
// and decodes each returned leaf_input/extra_data pair into a model.Entry.
// The server may return fewer entries than requested; the caller
// reconciles short reads.
func (c *Client) GetLogEntries(ctx context.Context, start, count uint64) (Response[[]model.Entry], error) {
	if count == 0 {
		return dataResponse[[]model.Entry](nil), nil
	}

	params := url.Values{
		"start": {strconv.FormatUint(start, 10)},
		"end":   {strconv.FormatUint(start+count, 10)},
	}

	resp, err := c.get(ctx, "ct/v1/get-entries", params)
	if err != nil {
		return Response[[]model.Entry]{}, err
	}
	defer resp.Body.Close()

	return classify(resp, func() ([]model.Entry, error) {
		var env entriesEnvelope
		if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
			return nil, wire.NewParseError("get-entries body: " + err.Error())
		}

		entries := make([]model.Entry, 0, len(env.Entries))
		for i, raw := range env.Entries {
			entry, err := decodeEntry(start+uint64(i), raw.LeafInput, raw.ExtraData)
			if err != nil {
				return nil, err
			}
			entries = append(entries, entry)
		}
		return entries, nil
	})
}

func decodeEntry(index uint64, leafInputB64, extraDataB64 string) (model.Entry, error) {
	leafInput, err := base64.StdEncoding.DecodeString(leafInputB64)
	if err != nil {
		return model.Entry{}, wire.NewParseError("leaf_input base64: " + err.Error())
	}
	extraData, err := base64.StdEncoding.DecodeString(extraDataB64)
	if err != nil {
		return model.Entry{}, wire.NewParseError("extra_data base64: " + err.Error())
	}

	leaf, err := wire.DecodeMerkleTreeLeaf(leafInput)
	if err != nil {
		return model.Entry{}, err
	}

	leafCert, err := certparse.Parse(leaf.CertBytes)
	if err != nil {
		return model.Entry{}, wire.NewParseError(err.Error())
	}

	chainDER, err := wire.DecodeChain(leaf.EntryType, extraData)
	if err != nil {
		return model.Entry{}, err
	}

	chain := make([]model.Certificate, 0, len(chainDER))
	for _, der := range chainDER {
		cert, err := certparse.Parse(der)
		if err != nil {
			return model.Entry{}, wire.NewParseError(err.Error())
		}
		chain = append(chain, cert)
	}

	return model.Entry{
		Index:       index,
		Timestamp:   time.UnixMilli(int64(leaf.TimestampMs)).Truncate(time.Second).UTC(),
		IsPrecert:   leaf.EntryType == wire.EntryTypePrecert,
		Certificate: leafCert,
		Chain:       chain,
	}, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values) (*http.Response, error) {
	target := c.BaseURL
	if len(target) == 0 || target[len(target)-1] != '/' {
		target += "/"
	}
	target += path
	if len(params) > 0 {
		target += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, &URLError{URL: target, Err: err}
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, &RequestError{Err: err}
	}
	return resp, nil
}
