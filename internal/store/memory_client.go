package store

import (
	"context"
	"maps"
	"strings"
	"sync"
)

// Statement is a cypher statement recorded by MemoryClient.
type Statement struct {
	Cypher string
	Params map[string]any
	Write  bool
}

// MemoryClient is an in-process Client for repository and exporter tests. It
// records every statement and answers reads from canned results.
type MemoryClient struct {
	mu           sync.Mutex
	statements   []Statement
	responses    map[string][]Result
	failOn       map[string]error
	connectivity error
}

// NewMemoryClient returns a client with no canned results.
func NewMemoryClient() *MemoryClient {
	return &MemoryClient{
		responses: make(map[string][]Result),
		failOn:    make(map[string]error),
	}
}

// Respond queues res for the next statement whose cypher contains fragment.
// Results queued for the same fragment are returned in order.
func (m *MemoryClient) Respond(fragment string, res Result) *MemoryClient {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses[fragment] = append(m.responses[fragment], res)
	return m
}

// FailOn makes every statement whose cypher contains fragment return err.
// An empty fragment matches everything.
func (m *MemoryClient) FailOn(fragment string, err error) *MemoryClient {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failOn[fragment] = err
	return m
}

// WithConnectivityError forces VerifyConnectivity to return err.
func (m *MemoryClient) WithConnectivityError(err error) *MemoryClient {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connectivity = err
	return m
}

func (m *MemoryClient) ExecuteWrite(ctx context.Context, cypher string, params map[string]any) (Result, error) {
	return m.execute(ctx, cypher, params, true)
}

func (m *MemoryClient) ExecuteRead(ctx context.Context, cypher string, params map[string]any) (Result, error) {
	return m.execute(ctx, cypher, params, false)
}

func (m *MemoryClient) execute(ctx context.Context, cypher string, params map[string]any, write bool) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for fragment, err := range m.failOn {
		if strings.Contains(cypher, fragment) {
			return Result{}, err
		}
	}

	m.statements = append(m.statements, Statement{
		Cypher: cypher,
		Params: maps.Clone(params),
		Write:  write,
	})

	for fragment, queued := range m.responses {
		if len(queued) == 0 || !strings.Contains(cypher, fragment) {
			continue
		}
		m.responses[fragment] = queued[1:]
		return queued[0], nil
	}
	return Result{}, nil
}

func (m *MemoryClient) VerifyConnectivity(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.connectivity
}

func (m *MemoryClient) Close(context.Context) error {
	return nil
}

// Statements returns a snapshot of every recorded statement in execution order.
func (m *MemoryClient) Statements() []Statement {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Statement(nil), m.statements...)
}

// Writes returns the recorded write statements.
func (m *MemoryClient) Writes() []Statement {
	return m.filter(true)
}

// Reads returns the recorded read statements.
func (m *MemoryClient) Reads() []Statement {
	return m.filter(false)
}

func (m *MemoryClient) filter(write bool) []Statement {
	var out []Statement
	for _, st := range m.Statements() {
		if st.Write == write {
			out = append(out, st)
		}
	}
	return out
}
