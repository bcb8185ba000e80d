package uploader

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/andybalholm/brotli"

	"github.com/nina-protocol/nina-sdk-go/pkg/shared"
)

type Client struct {
	network    string
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a new Client.
func NewClient(config Config) (*Client, error) {
	network, err := shared.NormalizeNetwork(config.Network)
	if err != nil {
		return nil, err
	}

	baseURL := strings.TrimSpace(config.BaseURL)
	if baseURL == "" {
		endpoints, endpointsErr := shared.EndpointsForNetwork(network)
		if endpointsErr != nil {
			return nil, endpointsErr
		}
		baseURL = endpoints.FileService
	}
	baseURL = strings.TrimRight(baseURL, "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		return nil, fmt.Errorf("base URL must start with http:// or https://")
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 120 * time.Second}
	}

	return &Client{
		network:    network,
		baseURL:    baseURL,
		apiKey:     strings.TrimSpace(config.APIKey),
		httpClient: httpClient,
	}, nil
}

// UploadMetadata uploads a JSON metadata document, brotli-compressed, and
// returns the upload job tracking it.
func (c *Client) UploadMetadata(ctx context.Context, metadata any) (UploadJob, error) {
	if metadata == nil {
		return UploadJob{}, fmt.Errorf("metadata is required")
	}

	encoded, err := json.Marshal(metadata)
	if err != nil {
		return UploadJob{}, fmt.Errorf("failed to encode metadata: %w", err)
	}

	compressed := new(bytes.Buffer)
	writer := brotli.NewWriter(compressed)
	if _, err := writer.Write(encoded); err != nil {
		return UploadJob{}, fmt.Errorf("failed to compress metadata: %w", err)
	}
	if err := writer.Close(); err != nil {
		return UploadJob{}, fmt.Errorf("failed to compress metadata: %w", err)
	}

	return c.postMultipart(ctx, "/metadata", "metadata.json", "application/json", compressed, map[string]string{
		"contentEncoding": "br",
	})
}

// UploadFile uploads a media file under the given name and MIME type and
// returns the upload job tracking it.
func (c *Client) UploadFile(ctx context.Context, fileName string, mimeType string, content io.Reader) (UploadJob, error) {
	if strings.TrimSpace(fileName) == "" {
		return UploadJob{}, fmt.Errorf("file name is required")
	}
	if content == nil {
		return UploadJob{}, fmt.Errorf("file content is required")
	}

	return c.postMultipart(ctx, "/upload", fileName, mimeType, content, nil)
}

// GetJob returns the requested value.
func (c *Client) GetJob(ctx context.Context, jobID string) (UploadJob, error) {
	trimmed := strings.TrimSpace(jobID)
	if trimmed == "" {
		return UploadJob{}, fmt.Errorf("job ID is required")
	}

	var job UploadJob
	if err := c.getJSON(ctx, fmt.Sprintf("/jobs/%s", url.PathEscape(trimmed)), &job); err != nil {
		return UploadJob{}, err
	}
	if job.ID == "" {
		job.ID = trimmed
	}
	return job, nil
}

// WaitForJob polls an upload job until it completes or fails.
func (c *Client) WaitForJob(ctx context.Context, jobID string, options WaitOptions) (UploadJob, error) {
	maxAttempts := options.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 60
	}
	interval := options.Interval
	if interval <= 0 {
		interval = 2 * time.Second
	}

	var latest UploadJob
	for attempt := 0; attempt < maxAttempts; attempt++ {
		job, err := c.GetJob(ctx, jobID)
		if err != nil {
			return UploadJob{}, err
		}
		latest = job

		if strings.EqualFold(job.Status, StatusFailed) {
			if job.Error == "" {
				job.Error = "upload failed"
			}
			return job, errors.New(job.Error)
		}
		if strings.EqualFold(job.Status, StatusCompleted) {
			return job, nil
		}

		select {
		case <-ctx.Done():
			return UploadJob{}, ctx.Err()
		case <-time.After(interval):
		}
	}

	return latest, fmt.Errorf("upload did not complete within %d attempts", maxAttempts)
}

// EstimateCost returns the requested value.
func (c *Client) EstimateCost(ctx context.Context, sizeBytes uint64) (CostEstimate, error) {
	if sizeBytes == 0 {
		return CostEstimate{}, fmt.Errorf("size must be positive")
	}

	var estimate CostEstimate
	endpoint := fmt.Sprintf("/estimate?bytes=%s", strconv.FormatUint(sizeBytes, 10))
	if err := c.getJSON(ctx, endpoint, &estimate); err != nil {
		return CostEstimate{}, err
	}
	return estimate, nil
}

func (c *Client) postMultipart(
	ctx context.Context,
	endpoint string,
	fileName string,
	mimeType string,
	content io.Reader,
	fields map[string]string,
) (UploadJob, error) {
	body := new(bytes.Buffer)
	form := multipart.NewWriter(body)

	for key, value := range fields {
		if err := form.WriteField(key, value); err != nil {
			return UploadJob{}, err
		}
	}
	if mimeType != "" {
		if err := form.WriteField("mimeType", mimeType); err != nil {
			return UploadJob{}, err
		}
	}

	part, err := form.CreateFormFile("file", fileName)
	if err != nil {
		return UploadJob{}, err
	}
	if _, err := io.Copy(part, content); err != nil {
		return UploadJob{}, fmt.Errorf("failed to read file content: %w", err)
	}
	if err := form.Close(); err != nil {
		return UploadJob{}, err
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.resolveURL(endpoint), body)
	if err != nil {
		return UploadJob{}, err
	}
	request.Header.Set("Content-Type", form.FormDataContentType())
	request.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		request.Header.Set("x-api-key", c.apiKey)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return UploadJob{}, err
	}
	defer response.Body.Close()

	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return UploadJob{}, err
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return UploadJob{}, fmt.Errorf(
			"file service POST %s failed with status %d: %s",
			endpoint,
			response.StatusCode,
			strings.TrimSpace(string(responseBody)),
		)
	}

	var job UploadJob
	if err := json.Unmarshal(responseBody, &job); err != nil {
		return UploadJob{}, fmt.Errorf("failed to decode file service response: %w", err)
	}
	return job, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, target any) error {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, c.resolveURL(endpoint), nil)
	if err != nil {
		return err
	}
	request.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		request.Header.Set("x-api-key", c.apiKey)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return err
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return fmt.Errorf("file service GET %s failed with status %d: %s", endpoint, response.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("failed to decode file service response: %w", err)
	}
	return nil
}

func (c *Client) resolveURL(endpoint string) string {
	if strings.HasPrefix(endpoint, "http://") || strings.HasPrefix(endpoint, "https://") {
		return endpoint
	}
	if strings.HasPrefix(endpoint, "/") {
		return c.baseURL + endpoint
	}
	return c.baseURL + "/" + endpoint
}
