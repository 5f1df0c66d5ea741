package devices

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"sensorhub-server/internal/data_plane/dto"
	"sensorhub-server/internal/shared_kernel/domain"
)

const (
	apiPrefix           = "/api/v1"
	maxResponseBodySize = 1 << 20

	defaultMaxIdleConns        = 100
	defaultMaxIdleConnsPerHost = 4
	defaultMaxConnsPerHost     = 4
	defaultIdleConnTimeout     = 60 * time.Second
)

var (
	ErrDeviceUnreachable = fmt.Errorf("device unreachable")
	ErrDeviceRejected    = fmt.Errorf("device rejected request")
)

// Client talks the devices' HTTP API. Timeouts are applied per request via
// context so slow devices do not hold up unrelated calls, and response
// bodies are capped at 1MB.
type Client struct {
	httpClient *http.Client
	timeout    time.Duration
}

type Option func(*Client)

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func NewClient(opts ...Option) *Client {
	client := &Client{
		httpClient: &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        defaultMaxIdleConns,
				MaxIdleConnsPerHost: defaultMaxIdleConnsPerHost,
				MaxConnsPerHost:     defaultMaxConnsPerHost,
				IdleConnTimeout:     defaultIdleConnTimeout,
			},
		},
		timeout: 10 * time.Second,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// FetchSensorsInfo retrieves the full sensor document of a device, covering
// every sensor type the firmware exposes.
func (c *Client) FetchSensorsInfo(ctx context.Context, device domain.Device) (dto.SensorsInfo, error) {
	var info dto.SensorsInfo
	err := c.get(ctx, device.Address, "/sensors/", device.AuthKey, &info)
	if err != nil {
		return nil, err
	}
	return info, nil
}

// RegistrationInfo probes a device's registration state. It is the only
// call that works against an unregistered device without an auth key.
func (c *Client) RegistrationInfo(ctx context.Context, address string) (dto.RegistrationInfo, error) {
	var info dto.RegistrationInfo
	err := c.get(ctx, address, "/registration/info/", "", &info)
	if err != nil {
		return dto.RegistrationInfo{}, err
	}
	return info, nil
}

// Register installs an auth key on the device. The device accepts the key
// only while unregistered.
func (c *Client) Register(ctx context.Context, address, authKey string) error {
	body, err := json.Marshal(dto.RegisterRequest{AuthKey: authKey})
	if err != nil {
		return fmt.Errorf("encoding register request: %w", err)
	}

	var response dto.RegisterResponse
	err = c.post(ctx, address, "/registration/register/", body, &response)
	if err != nil {
		return err
	}
	if response.Error || response.Code != 0 {
		return fmt.Errorf("%w: register code %d", ErrDeviceRejected, response.Code)
	}
	return nil
}

// Unregister wipes the auth key from the device, returning it to the
// unregistered state.
func (c *Client) Unregister(ctx context.Context, address, authKey string) error {
	var response dto.RegisterResponse
	err := c.get(ctx, address, "/registration/unregister/", authKey, &response)
	if err != nil {
		return err
	}
	if response.Error || response.Code != 0 {
		return fmt.Errorf("%w: unregister code %d", ErrDeviceRejected, response.Code)
	}
	return nil
}

// ChipInfo reads the device's chip identity, captured at registration time.
func (c *Client) ChipInfo(ctx context.Context, address, authKey string) (dto.ChipInfo, error) {
	var info dto.ChipInfo
	err := c.get(ctx, address, "/device/chip/", authKey, &info)
	if err != nil {
		return dto.ChipInfo{}, err
	}
	return info, nil
}

// Restart asks the device to reboot. The device answers before going down
// so the call still completes normally.
func (c *Client) Restart(ctx context.Context, address, authKey string) error {
	var response struct {
		OK bool `json:"ok"`
	}
	err := c.get(ctx, address, "/device/restart/", authKey, &response)
	if err != nil {
		return err
	}
	if !response.OK {
		return fmt.Errorf("%w: restart refused", ErrDeviceRejected)
	}
	return nil
}

func (c *Client) get(ctx context.Context, address, path, authKey string, out any) error {
	return c.do(ctx, http.MethodGet, address, path, authKey, nil, out)
}

func (c *Client) post(ctx context.Context, address, path string, body []byte, out any) error {
	return c.do(ctx, http.MethodPost, address, path, "", body, out)
}

func (c *Client) do(ctx context.Context, method, address, path, authKey string, body []byte, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	endpoint := c.buildURL(address, path, authKey)

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if body != nil {
		req.Header.Set("content-type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDeviceUnreachable, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("%w: status %d", ErrDeviceRejected, resp.StatusCode)
	}

	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("decoding response body: %w", err)
	}

	return nil
}

func (c *Client) buildURL(address, path, authKey string) string {
	endpoint := fmt.Sprintf("http://%s%s%s", address, apiPrefix, path)
	if authKey != "" {
		query := url.Values{"auth_key": []string{authKey}}
		endpoint += "?" + query.Encode()
	}
	return endpoint
}

// Close releases idle connections in the pool.
func (c *Client) Close() {
	if transport, ok := c.httpClient.Transport.(*http.Transport); ok {
		transport.CloseIdleConnections()
	}
}
