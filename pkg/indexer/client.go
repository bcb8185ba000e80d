package indexer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/nina-protocol/nina-sdk-go/pkg/shared"
)

type Config struct {
	Network    string
	BaseURL    string
	HTTPClient *http.Client
	Headers    map[string]string
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	headers    map[string]string
}

// QueryOptions carries list pagination parameters.
type QueryOptions struct {
	Limit  int
	Offset int
	Sort   string
}

// NewClient creates a new Client.
func NewClient(config Config) (*Client, error) {
	network, err := shared.NormalizeNetwork(config.Network)
	if err != nil {
		return nil, err
	}

	baseURL := strings.TrimRight(config.BaseURL, "/")
	if baseURL == "" {
		endpoints, err := shared.EndpointsForNetwork(network)
		if err != nil {
			return nil, err
		}
		baseURL = endpoints.Indexer
	}
	parsedBaseURL, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid indexer base URL: %w", err)
	}
	if parsedBaseURL.Scheme != "http" && parsedBaseURL.Scheme != "https" {
		return nil, fmt.Errorf("invalid indexer base URL: scheme must be http or https")
	}
	if strings.TrimSpace(parsedBaseURL.Host) == "" {
		return nil, fmt.Errorf("invalid indexer base URL: host is required")
	}
	baseURL = strings.TrimRight(parsedBaseURL.String(), "/")

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	headers := map[string]string{}
	for key, value := range config.Headers {
		headers[key] = value
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		headers:    headers,
	}, nil
}

// BaseURL performs the requested operation.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// GetReleases returns the requested value.
func (c *Client) GetReleases(ctx context.Context, options QueryOptions) ([]Release, error) {
	var response releasesResponse
	if err := c.getJSON(ctx, withQuery("/releases", options), &response); err != nil {
		return nil, err
	}
	return response.Releases, nil
}

// GetRelease returns the requested value.
func (c *Client) GetRelease(ctx context.Context, publicKey string) (*Release, error) {
	if strings.TrimSpace(publicKey) == "" {
		return nil, fmt.Errorf("release public key is required")
	}

	var response releaseResponse
	if err := c.getJSON(ctx, fmt.Sprintf("/releases/%s", publicKey), &response); err != nil {
		return nil, err
	}
	return &response.Release, nil
}

// GetReleaseCollectors returns the requested value.
func (c *Client) GetReleaseCollectors(ctx context.Context, publicKey string) ([]Collector, error) {
	if strings.TrimSpace(publicKey) == "" {
		return nil, fmt.Errorf("release public key is required")
	}

	var response collectorsResponse
	if err := c.getJSON(ctx, fmt.Sprintf("/releases/%s/collectors", publicKey), &response); err != nil {
		return nil, err
	}
	return response.Collectors, nil
}

// GetReleaseHubs returns the requested value.
func (c *Client) GetReleaseHubs(ctx context.Context, publicKey string, options QueryOptions) ([]Hub, error) {
	if strings.TrimSpace(publicKey) == "" {
		return nil, fmt.Errorf("release public key is required")
	}

	var response hubsResponse
	if err := c.getJSON(ctx, withQuery(fmt.Sprintf("/releases/%s/hubs", publicKey), options), &response); err != nil {
		return nil, err
	}
	return response.Hubs, nil
}

// GetReleaseExchanges returns the requested value.
func (c *Client) GetReleaseExchanges(ctx context.Context, publicKey string, options QueryOptions) ([]Exchange, error) {
	if strings.TrimSpace(publicKey) == "" {
		return nil, fmt.Errorf("release public key is required")
	}

	var response exchangesResponse
	if err := c.getJSON(ctx, withQuery(fmt.Sprintf("/releases/%s/exchanges", publicKey), options), &response); err != nil {
		return nil, err
	}
	return response.Exchanges, nil
}

// GetReleaseRevenueShareRecipients returns the requested value.
func (c *Client) GetReleaseRevenueShareRecipients(ctx context.Context, publicKey string) ([]RevenueShareRecipient, error) {
	if strings.TrimSpace(publicKey) == "" {
		return nil, fmt.Errorf("release public key is required")
	}

	var response revenueShareRecipientsResponse
	if err := c.getJSON(ctx, fmt.Sprintf("/releases/%s/revenueShareRecipients", publicKey), &response); err != nil {
		return nil, err
	}
	return response.RevenueShareRecipients, nil
}

// GetHubs returns the requested value.
func (c *Client) GetHubs(ctx context.Context, options QueryOptions) ([]Hub, error) {
	var response hubsResponse
	if err := c.getJSON(ctx, withQuery("/hubs", options), &response); err != nil {
		return nil, err
	}
	return response.Hubs, nil
}

// GetHub returns a hub by public key or handle.
func (c *Client) GetHub(ctx context.Context, publicKeyOrHandle string) (*Hub, error) {
	if strings.TrimSpace(publicKeyOrHandle) == "" {
		return nil, fmt.Errorf("hub public key or handle is required")
	}

	var response hubResponse
	if err := c.getJSON(ctx, fmt.Sprintf("/hubs/%s", publicKeyOrHandle), &response); err != nil {
		return nil, err
	}
	return &response.Hub, nil
}

// GetHubReleases returns the requested value.
func (c *Client) GetHubReleases(ctx context.Context, publicKeyOrHandle string, options QueryOptions) ([]Release, error) {
	if strings.TrimSpace(publicKeyOrHandle) == "" {
		return nil, fmt.Errorf("hub public key or handle is required")
	}

	var response releasesResponse
	if err := c.getJSON(ctx, withQuery(fmt.Sprintf("/hubs/%s/releases", publicKeyOrHandle), options), &response); err != nil {
		return nil, err
	}
	return response.Releases, nil
}

// GetHubPosts returns the requested value.
func (c *Client) GetHubPosts(ctx context.Context, publicKeyOrHandle string, options QueryOptions) ([]Post, error) {
	if strings.TrimSpace(publicKeyOrHandle) == "" {
		return nil, fmt.Errorf("hub public key or handle is required")
	}

	var response postsResponse
	if err := c.getJSON(ctx, withQuery(fmt.Sprintf("/hubs/%s/posts", publicKeyOrHandle), options), &response); err != nil {
		return nil, err
	}
	return response.Posts, nil
}

// GetHubCollaborators returns the requested value.
func (c *Client) GetHubCollaborators(ctx context.Context, publicKeyOrHandle string) ([]Collaborator, error) {
	if strings.TrimSpace(publicKeyOrHandle) == "" {
		return nil, fmt.Errorf("hub public key or handle is required")
	}

	var response collaboratorsResponse
	if err := c.getJSON(ctx, fmt.Sprintf("/hubs/%s/collaborators", publicKeyOrHandle), &response); err != nil {
		return nil, err
	}
	return response.Collaborators, nil
}

// GetHubContent returns the hub together with its releases, posts, and
// collaborators in one call.
func (c *Client) GetHubContent(ctx context.Context, publicKeyOrHandle string) (*HubContent, error) {
	if strings.TrimSpace(publicKeyOrHandle) == "" {
		return nil, fmt.Errorf("hub public key or handle is required")
	}

	var response HubContent
	if err := c.getJSON(ctx, fmt.Sprintf("/hubs/%s/all", publicKeyOrHandle), &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// GetPosts returns the requested value.
func (c *Client) GetPosts(ctx context.Context, options QueryOptions) ([]Post, error) {
	var response postsResponse
	if err := c.getJSON(ctx, withQuery("/posts", options), &response); err != nil {
		return nil, err
	}
	return response.Posts, nil
}

// GetPost returns a post by public key or slug.
func (c *Client) GetPost(ctx context.Context, publicKeyOrSlug string) (*Post, error) {
	if strings.TrimSpace(publicKeyOrSlug) == "" {
		return nil, fmt.Errorf("post public key or slug is required")
	}

	var response postResponse
	if err := c.getJSON(ctx, fmt.Sprintf("/posts/%s", publicKeyOrSlug), &response); err != nil {
		return nil, err
	}
	return &response.Post, nil
}

// GetExchanges returns the requested value.
func (c *Client) GetExchanges(ctx context.Context, options QueryOptions) ([]Exchange, error) {
	var response exchangesResponse
	if err := c.getJSON(ctx, withQuery("/exchanges", options), &response); err != nil {
		return nil, err
	}
	return response.Exchanges, nil
}

// GetExchange returns the requested value.
func (c *Client) GetExchange(ctx context.Context, publicKey string) (*Exchange, error) {
	if strings.TrimSpace(publicKey) == "" {
		return nil, fmt.Errorf("exchange public key is required")
	}

	var response exchangeResponse
	if err := c.getJSON(ctx, fmt.Sprintf("/exchanges/%s", publicKey), &response); err != nil {
		return nil, err
	}
	return &response.Exchange, nil
}

// GetAccount returns the requested value.
func (c *Client) GetAccount(ctx context.Context, publicKey string) (*Account, error) {
	if strings.TrimSpace(publicKey) == "" {
		return nil, fmt.Errorf("account public key is required")
	}

	var response accountResponse
	if err := c.getJSON(ctx, fmt.Sprintf("/accounts/%s", publicKey), &response); err != nil {
		return nil, err
	}
	return &response.Account, nil
}

// GetAccountCollected returns the releases an account has collected.
func (c *Client) GetAccountCollected(ctx context.Context, publicKey string, options QueryOptions) ([]Release, error) {
	if strings.TrimSpace(publicKey) == "" {
		return nil, fmt.Errorf("account public key is required")
	}

	var response releasesResponse
	if err := c.getJSON(ctx, withQuery(fmt.Sprintf("/accounts/%s/collected", publicKey), options), &response); err != nil {
		return nil, err
	}
	return response.Releases, nil
}

// GetAccountPublished returns the releases an account has published.
func (c *Client) GetAccountPublished(ctx context.Context, publicKey string, options QueryOptions) ([]Release, error) {
	if strings.TrimSpace(publicKey) == "" {
		return nil, fmt.Errorf("account public key is required")
	}

	var response releasesResponse
	if err := c.getJSON(ctx, withQuery(fmt.Sprintf("/accounts/%s/published", publicKey), options), &response); err != nil {
		return nil, err
	}
	return response.Releases, nil
}

// GetAccountHubs returns the requested value.
func (c *Client) GetAccountHubs(ctx context.Context, publicKey string, options QueryOptions) ([]Hub, error) {
	if strings.TrimSpace(publicKey) == "" {
		return nil, fmt.Errorf("account public key is required")
	}

	var response hubsResponse
	if err := c.getJSON(ctx, withQuery(fmt.Sprintf("/accounts/%s/hubs", publicKey), options), &response); err != nil {
		return nil, err
	}
	return response.Hubs, nil
}

// GetAccountPosts returns the requested value.
func (c *Client) GetAccountPosts(ctx context.Context, publicKey string, options QueryOptions) ([]Post, error) {
	if strings.TrimSpace(publicKey) == "" {
		return nil, fmt.Errorf("account public key is required")
	}

	var response postsResponse
	if err := c.getJSON(ctx, withQuery(fmt.Sprintf("/accounts/%s/posts", publicKey), options), &response); err != nil {
		return nil, err
	}
	return response.Posts, nil
}

// GetAccountExchanges returns the requested value.
func (c *Client) GetAccountExchanges(ctx context.Context, publicKey string, options QueryOptions) ([]Exchange, error) {
	if strings.TrimSpace(publicKey) == "" {
		return nil, fmt.Errorf("account public key is required")
	}

	var response exchangesResponse
	if err := c.getJSON(ctx, withQuery(fmt.Sprintf("/accounts/%s/exchanges", publicKey), options), &response); err != nil {
		return nil, err
	}
	return response.Exchanges, nil
}

// GetTransaction looks up the entity a confirmed transaction produced,
// keyed by its signature.
func (c *Client) GetTransaction(ctx context.Context, signature string) (*Transaction, error) {
	if strings.TrimSpace(signature) == "" {
		return nil, fmt.Errorf("transaction signature is required")
	}

	var response transactionResponse
	if err := c.getJSON(ctx, fmt.Sprintf("/tx/%s", signature), &response); err != nil {
		return nil, err
	}
	return &response.Transaction, nil
}

// Search queries accounts, releases, hubs, and posts by free text.
func (c *Client) Search(ctx context.Context, query string) (*SearchResults, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("search query is required")
	}

	values := url.Values{}
	values.Set("query", strings.TrimSpace(query))

	var response SearchResults
	if err := c.getJSON(ctx, fmt.Sprintf("/search?%s", values.Encode()), &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func withQuery(endpoint string, options QueryOptions) string {
	values := url.Values{}
	if options.Limit > 0 {
		values.Set("limit", fmt.Sprintf("%d", options.Limit))
	}
	if options.Offset > 0 {
		values.Set("offset", fmt.Sprintf("%d", options.Offset))
	}
	if options.Sort != "" {
		values.Set("sort", options.Sort)
	}

	if encoded := values.Encode(); encoded != "" {
		return fmt.Sprintf("%s?%s", endpoint, encoded)
	}
	return endpoint
}

func (c *Client) getJSON(ctx context.Context, pathOrURL string, target any) error {
	requestURL := c.resolveURL(pathOrURL)
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	request.Header.Set("Accept", "application/json")
	for key, value := range c.headers {
		request.Header.Set(key, value)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("indexer request failed: %w", err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return fmt.Errorf("failed to read indexer response: %w", err)
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return fmt.Errorf(
			"indexer request failed with status %d: %s",
			response.StatusCode,
			strings.TrimSpace(string(body)),
		)
	}

	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("failed to decode indexer response: %w", err)
	}

	return nil
}

func (c *Client) resolveURL(pathOrURL string) string {
	if strings.HasPrefix(pathOrURL, "http://") || strings.HasPrefix(pathOrURL, "https://") {
		return pathOrURL
	}

	path := pathOrURL
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return c.baseURL + path
}
