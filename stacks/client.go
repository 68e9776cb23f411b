// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package stacks

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/brunoga/deep"
	"go.uber.org/zap"
)

const (
	moduleName    = "github.com/Azure/azwebapp/stacks"
	moduleVersion = "v0.1.0"

	// APIVersion is the webAppStacks API version that returns the Java 17 and 21 Linux runtimes.
	APIVersion = "2023-01-01"

	webAppStacksPath = "/providers/Microsoft.Web/webAppStacks"
)

// Client fetches web app stacks from Azure Resource Manager.
// Results are cached per OS for the lifetime of the client; callers receive copies.
type Client struct {
	arm    *arm.Client
	logger *zap.Logger
	cache  map[OS][]AppStack
	mu     sync.Mutex
}

// ClientOptions configures a Client.
type ClientOptions struct {
	arm.ClientOptions
	Logger *zap.Logger
}

type listResult struct {
	Value    []AppStack `json:"value"`
	NextLink *string    `json:"nextLink,omitempty"`
}

// NewClient creates a new stacks client.
func NewClient(cred azcore.TokenCredential, opts *ClientOptions) (*Client, error) {
	if opts == nil {
		opts = &ClientOptions{}
	}
	c, err := arm.NewClient(moduleName, moduleVersion, cred, &opts.ClientOptions)
	if err != nil {
		return nil, fmt.Errorf("stacks.NewClient: %w", err)
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		arm:    c,
		logger: logger,
		cache:  make(map[OS][]AppStack),
	}, nil
}

// List returns all web app stacks available for the given OS, following next links.
func (c *Client) List(ctx context.Context, os OS) ([]AppStack, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if cached, ok := c.cache[os]; ok {
		return deep.Copy(cached)
	}

	result := make([]AppStack, 0)
	next := runtime.JoinPaths(c.arm.Endpoint(), webAppStacksPath)
	first := true
	for next != "" {
		page, err := c.listPage(ctx, next, os, first)
		if err != nil {
			return nil, err
		}
		result = append(result, page.Value...)
		next = ""
		if page.NextLink != nil {
			next = *page.NextLink
		}
		first = false
	}

	c.logger.Debug("fetched web app stacks", zap.String("os", string(os)), zap.Int("count", len(result)))
	c.cache[os] = result
	return deep.Copy(result)
}

func (c *Client) listPage(ctx context.Context, url string, os OS, first bool) (*listResult, error) {
	req, err := runtime.NewRequest(ctx, http.MethodGet, url)
	if err != nil {
		return nil, fmt.Errorf("stacks.Client.List: creating request: %w", err)
	}
	if first {
		q := req.Raw().URL.Query()
		q.Set("api-version", APIVersion)
		if os != "" && os != OSAll {
			q.Set("stackOsType", string(os))
		}
		req.Raw().URL.RawQuery = q.Encode()
	}
	req.Raw().Header.Set("Accept", "application/json")

	resp, err := c.arm.Pipeline().Do(req)
	if err != nil {
		return nil, fmt.Errorf("stacks.Client.List: %w", err)
	}
	if !runtime.HasStatusCode(resp, http.StatusOK) {
		return nil, runtime.NewResponseError(resp)
	}

	page := new(listResult)
	if err := runtime.UnmarshalAsJSON(resp, page); err != nil {
		return nil, fmt.Errorf("stacks.Client.List: decoding response: %w", err)
	}
	return page, nil
}
