// Package ethrpc provides a productquery.Client that calls the registry
// contract through a node's JSON-RPC endpoint over HTTP.
package ethrpc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"productreader/pkg/domain"
	"productreader/pkg/metrics"
	"productreader/pkg/productquery"
	"productreader/pkg/serrors"
	"strings"
	"sync/atomic"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// maxResponseBytes bounds how much of a response body is read.
const maxResponseBytes = 1 << 20

// Options configure the registry client.
type Options struct {
	// Endpoint is the JSON-RPC URL of the node.
	Endpoint string
	// Contract is the address of the registry contract.
	Contract common.Address
	// Timeout bounds every call. It is required.
	Timeout time.Duration
	// BlockTag selects the chain state calls run against. Defaults to "latest".
	BlockTag string
	// MeterProvider records call durations. Defaults to the global provider.
	MeterProvider metric.MeterProvider
}

// Client performs read-only eth_call queries against the registry contract.
// It never signs or sends transactions and never retries. It is safe for
// concurrent use.
type Client struct {
	httpClient *http.Client
	opts       Options
	nextID     atomic.Uint64
	duration   metric.Float64Histogram
}

// Ensure Client conforms to the productquery.Client interface at compile time.
var _ productquery.Client = (*Client)(nil)

// New constructs a Client sending requests with httpClient.
func New(httpClient *http.Client, opts Options) (*Client, error) {
	if opts.Endpoint == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "rpc endpoint is required")
	}
	if opts.Timeout <= 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "rpc timeout must be positive, got %s", opts.Timeout)
	}
	if opts.Contract == (common.Address{}) {
		return nil, serrors.With(serrors.ErrBadRequest, "contract address is required")
	}
	if opts.BlockTag == "" {
		opts.BlockTag = "latest"
	}
	if opts.MeterProvider == nil {
		opts.MeterProvider = otel.GetMeterProvider()
	}

	duration, err := opts.MeterProvider.Meter("productreader/pkg/productquery/ethrpc").Float64Histogram(
		"productreader.rpc.duration",
		metric.WithUnit("s"),
		metric.WithDescription("Duration of JSON-RPC calls to the product registry."),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...),
	)
	if err != nil {
		return nil, fmt.Errorf("could not create duration histogram: %w", err)
	}

	return &Client{
		httpClient: httpClient,
		opts:       opts,
		duration:   duration,
	}, nil
}

// GetProduct calls getProduct(addr) and returns the six decoded return values.
func (c *Client) GetProduct(ctx context.Context, addr domain.ProductAddress) (productquery.Tuple, error) {
	data, err := registryABI.Pack(methodGetProduct, common.Address(addr))
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrInternal, err, "could not pack getProduct call")
	}

	out, err := c.call(ctx, data)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, serrors.With(serrors.ErrMalformedResponse,
			"getProduct returned no data, is %s a registry contract?", c.opts.Contract.Hex())
	}

	values, err := registryABI.Unpack(methodGetProduct, out)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrMalformedResponse, err, "could not unpack getProduct result")
	}

	return values, nil
}

// call runs eth_call with the given calldata against the registry contract
// and returns the raw return data.
func (c *Client) call(ctx context.Context, data []byte) (out []byte, err error) {
	start := time.Now()
	defer func() { c.observe(ctx, "eth_call", start, err) }()

	callCtx, cancel := context.WithTimeout(ctx, c.opts.Timeout)
	defer cancel()

	body := encodeEthCall(c.nextID.Add(1), c.opts.Contract, data, c.opts.BlockTag)
	req, err := http.NewRequestWithContext(callCtx, http.MethodPost, c.opts.Endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrTransport, err, "could not create request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, serrors.Wrap(serrors.ErrTransport, err, "eth_call timed out after %s", c.opts.Timeout)
		}

		return nil, serrors.Wrap(serrors.ErrTransport, err, "could not send eth_call")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrTransport, err, "could not read response body")
	}

	res, decodeErr := decodeResponse(b)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// some nodes answer RPC errors with a non-2xx status and a JSON body
		if decodeErr == nil && res.err != nil {
			return nil, classifyRPCError(res.err)
		}

		return nil, serrors.With(serrors.ErrTransport,
			"eth_call failed with HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}
	if decodeErr != nil {
		return nil, serrors.Wrap(serrors.ErrMalformedResponse, decodeErr, "invalid JSON-RPC response")
	}
	if res.err != nil {
		return nil, classifyRPCError(res.err)
	}
	if !res.hasResult {
		return nil, serrors.With(serrors.ErrMalformedResponse, "JSON-RPC response has neither result nor error")
	}

	out, err = hexutil.Decode(res.result)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrMalformedResponse, err, "invalid result hex")
	}

	return out, nil
}

func classifyRPCError(e *RPCError) error {
	if !e.Reverted() {
		return serrors.Wrap(serrors.ErrTransport, e, "eth_call rejected")
	}

	if payload, err := hexutil.Decode(e.Data); err == nil && len(payload) > 0 {
		if reason, err := abi.UnpackRevert(payload); err == nil {
			return serrors.Wrap(serrors.ErrReverted, e, "getProduct reverted: %s", reason)
		}
	}

	return serrors.Wrap(serrors.ErrReverted, e, "getProduct reverted")
}

func (c *Client) observe(ctx context.Context, method string, start time.Time, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
		if k := serrors.KindOf(err); k != nil {
			outcome = strings.ToLower(k.Error())
		}
	}

	c.duration.Record(ctx, time.Since(start).Seconds(), metric.WithAttributes(
		attribute.String("rpc.method", method),
		attribute.String("outcome", outcome),
	))
}
