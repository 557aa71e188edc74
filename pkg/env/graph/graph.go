package graph

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"

	"github.com/app-sre/graphgate/pkg/env"
)

const DefaultDatabase = "neo4j"

type Env struct {
	URI            string
	Scheme         Scheme
	Host           string
	Port           int
	Username       string
	Password       string
	Database       string
	MaxConnections int
	AllowWrite     bool
}

func NewGraphEnv() *Env {
	return &Env{}
}

func (g *Env) Populate() error {
	uri := os.Getenv("NEO4J_URI")
	if uri == "" {
		return &env.Error{Name: "NEO4J_URI"}
	}
	u, err := url.Parse(uri)
	if err != nil {
		return &env.TypeError{Name: "NEO4J_URI"}
	}
	g.URI = uri

	scheme := Scheme(u.Scheme)
	if !scheme.IsValid() {
		return fmt.Errorf("unable to use URI scheme: %s", u.Scheme)
	}
	g.Scheme = scheme

	host := u.Hostname()
	if host == "" {
		return &env.TypeError{Name: "NEO4J_URI"}
	}
	g.Host = host

	g.Port = scheme.Port()
	if p := u.Port(); p != "" {
		port, err := strconv.Atoi(p)
		if err != nil {
			return &env.TypeError{Name: "NEO4J_URI"}
		}
		g.Port = port
	}

	username := os.Getenv("NEO4J_USER")
	if username == "" {
		return &env.Error{Name: "NEO4J_USER"}
	}
	g.Username = username

	password := os.Getenv("NEO4J_PASS")
	if password == "" {
		return &env.Error{Name: "NEO4J_PASS"}
	}
	g.Password = password

	g.Database = DefaultDatabase
	if name := os.Getenv("NEO4J_DATABASE"); name != "" {
		g.Database = name
	}

	if s := os.Getenv("NEO4J_MAX_CONNECTIONS"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			return &env.TypeError{Name: "NEO4J_MAX_CONNECTIONS"}
		}
		g.MaxConnections = n
	}

	// Sessions open in write mode unless told otherwise, the same default
	// the driver itself applies.
	g.AllowWrite = true
	if s := os.Getenv("NEO4J_WRITE"); s != "" {
		write, err := strconv.ParseBool(s)
		if err != nil {
			return &env.TypeError{Name: "NEO4J_WRITE"}
		}
		g.AllowWrite = write
	}

	return nil
}

// Address returns the host and port the driver connects to first.
func (g *Env) Address() string {
	return net.JoinHostPort(g.Host, strconv.Itoa(g.Port))
}
