//go:build integration
// +build integration

// Package testinfra starts the containers used by integration tests.
package testinfra

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const wiremockMappingsDir = "/home/wiremock/mappings"

// WiremockContainer stands in for the PayPal REST API.
type WiremockContainer struct {
	Container testcontainers.Container
	BaseURL   string
}

// NewWiremock starts WireMock with every *.json stub found in mappingsPath.
func NewWiremock(ctx context.Context, mappingsPath string) (*WiremockContainer, error) {
	absPath, err := filepath.Abs(mappingsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}

	stubs, err := filepath.Glob(filepath.Join(absPath, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("list wiremock mappings: %w", err)
	}
	if len(stubs) == 0 {
		return nil, fmt.Errorf("no wiremock mappings in %s", absPath)
	}

	files := make([]testcontainers.ContainerFile, 0, len(stubs))
	for _, stub := range stubs {
		if _, err := os.Stat(stub); err != nil {
			return nil, fmt.Errorf("stat mapping: %w", err)
		}
		files = append(files, testcontainers.ContainerFile{
			HostFilePath:      stub,
			ContainerFilePath: wiremockMappingsDir + "/" + filepath.Base(stub),
			FileMode:          0o644,
		})
	}

	req := testcontainers.ContainerRequest{
		Image:        "wiremock/wiremock:3.9.1",
		ExposedPorts: []string{"8080/tcp"},
		WaitingFor:   wait.ForHTTP("/__admin/mappings").WithPort("8080/tcp"),
		Cmd:          []string{"--global-response-templating", "--disable-gzip", "--verbose"},
		Files:        files,
	}

	container, err := testcontainers.GenericContainer(ctx,
		testcontainers.GenericContainerRequest{
			ContainerRequest: req,
			Started:          true,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start wiremock container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("wiremock host: %w", err)
	}
	port, err := container.MappedPort(ctx, "8080/tcp")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("wiremock port: %w", err)
	}

	return &WiremockContainer{
		Container: container,
		BaseURL:   fmt.Sprintf("http://%s:%s", host, port.Port()),
	}, nil
}

func (c *WiremockContainer) Cleanup(ctx context.Context) {
	if c.Container != nil {
		_ = c.Container.Terminate(ctx)
	}
}
