//go:build integration
// +build integration

package test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/orlangure/gnomock"
	"github.com/stretchr/testify/require"

	"github.com/app-sre/graphgate/pkg/graph"
)

const (
	neo4jImage    = "neo4j:5"
	neo4jUser     = "neo4j"
	neo4jPassword = "gnomick123"
	apiKey        = "integration-key"
)

func neo4jURI(c *gnomock.Container) string {
	return fmt.Sprintf("bolt://%s", c.DefaultAddress())
}

func startNeo4j(t *testing.T) *gnomock.Container {
	healthcheck := func(ctx context.Context, c *gnomock.Container) error {
		client, err := graph.NewNeo4jClient(graph.Options{
			URI:      neo4jURI(c),
			Username: neo4jUser,
			Password: neo4jPassword,
		})
		if err != nil {
			return err
		}
		defer func() { _ = client.Close(ctx) }()

		return client.VerifyConnectivity(ctx)
	}

	neo4j, err := gnomock.StartCustom(neo4jImage, gnomock.DefaultTCP(7687),
		gnomock.WithEnv("NEO4J_AUTH="+neo4jUser+"/"+neo4jPassword),
		gnomock.WithHealthCheck(healthcheck),
		gnomock.WithTimeout(3*time.Minute),
		gnomock.WithUseLocalImagesFirst(),
	)
	require.NoError(t, err)

	t.Cleanup(func() { _ = gnomock.Stop(neo4j) })

	return neo4j
}

func seedGraph(t *testing.T, c *gnomock.Container) {
	client, err := graph.NewNeo4jClient(graph.Options{
		URI:        neo4jURI(c),
		Username:   neo4jUser,
		Password:   neo4jPassword,
		AllowWrite: true,
	})
	require.NoError(t, err)
	defer func() { _ = client.Close(context.Background()) }()

	vehicles := []map[string]any{
		{"vin": "1HGCM82633A004352", "make": "Honda", "year": int64(2003)},
		{"vin": "JH4KA9650MC012345", "make": "Acura", "year": int64(1991)},
		{"vin": "5YJ3E1EA7KF317000", "make": "Tesla", "year": int64(2019)},
	}
	for _, v := range vehicles {
		_, err := client.Run(context.Background(),
			"MERGE (b:Brand {name: $make}) CREATE (v:Vehicle {vin: $vin, make: $make, year: $year})-[:MADE_BY]->(b)", v)
		require.NoError(t, err)
	}
}

func setEnvironment(t *testing.T, uri string, port int) {
	t.Setenv("NEO4J_URI", uri)
	t.Setenv("NEO4J_USER", neo4jUser)
	t.Setenv("NEO4J_PASS", neo4jPassword)
	t.Setenv("NEO4J_WRITE", "false")
	t.Setenv("API_KEY", apiKey)
	t.Setenv("PORT", strconv.Itoa(port))
}

func waitForPortOpen(port int) {
	address := net.JoinHostPort("localhost", strconv.Itoa(port))
	for {
		conn, err := net.DialTimeout("tcp", address, 500*time.Millisecond)
		if err == nil {
			_ = conn.Close()
			break
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func doRequest(t *testing.T, method string, port int, path, body, key string) (int, string) {
	url := fmt.Sprintf("http://localhost:%d%s", port, path)

	req, err := http.NewRequest(method, url, bytes.NewBufferString(body))
	require.NoError(t, err)

	req.Header.Set("Content-Type", "application/json")
	if key != "" {
		req.Header.Set("X-Api-Key", key)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	content, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, string(content)
}
