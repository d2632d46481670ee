package simpletools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"simpletools/internal/api"
	"simpletools/internal/creds"
	"simpletools/pkg/logging"
	pkgstrings "simpletools/pkg/strings"
)

// Result status values.
const (
	StatusSuccess  = "success"
	StatusNotFound = "not_found"
	StatusEmpty    = "empty"
)

// Result action values.
const (
	ActionStore    = "store"
	ActionRetrieve = "retrieve"
	ActionList     = "list"
)

// storeResult is the JSON envelope returned by store_data. Field order
// matters for readability of the rendered text, not for consumers.
type storeResult struct {
	ID            string `json:"id"`
	Status        string `json:"status"`
	Action        string `json:"action"`
	Key           string `json:"key"`
	Value         string `json:"value"`
	Message       string `json:"message"`
	Authenticated bool   `json:"authenticated"`
	Timestamp     int64  `json:"timestamp"`
}

// retrieveResult is the JSON envelope returned by retrieve_data. Value is
// omitted on a miss; stored values are never empty so omitempty cannot
// swallow a real value.
type retrieveResult struct {
	ID        string `json:"id"`
	Status    string `json:"status"`
	Action    string `json:"action"`
	Key       string `json:"key"`
	Value     string `json:"value,omitempty"`
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp"`
}

// listResult is the JSON envelope returned by list_data. FormattedList is
// only present when there is data to format.
type listResult struct {
	ID            string            `json:"id"`
	Status        string            `json:"status"`
	Action        string            `json:"action"`
	Data          map[string]string `json:"data"`
	Count         int               `json:"count"`
	Message       string            `json:"message"`
	FormattedList string            `json:"formatted_list,omitempty"`
	Timestamp     int64             `json:"timestamp"`
}

// ExecuteTool implements api.ToolProvider. Authentication runs before any
// tool logic; its failures come back as readable text results, while
// argument faults and unknown names propagate as errors for the protocol
// layer to report.
func (p *Provider) ExecuteTool(ctx context.Context, toolName string, args map[string]interface{}) (*api.CallToolResult, error) {
	userID := p.callerID(ctx)
	logging.Debug("SimpleTools", "User %s calling tool %s with arguments %s", userID, toolName,
		pkgstrings.TruncateOneLine(fmt.Sprintf("%v", args), pkgstrings.DefaultLogFieldMaxLen))

	if err := p.authenticate(ctx, userID); err != nil {
		return api.HandleErrorWithPrefix(err, "Authentication error"), nil
	}

	switch toolName {
	case ToolStoreData:
		return p.handleStoreData(userID, args)
	case ToolRetrieveData:
		return p.handleRetrieveData(userID, args)
	case ToolListData:
		return p.handleListData(userID)
	default:
		return nil, api.NewUnknownToolError(toolName)
	}
}

// authenticate resolves the caller's API key. Any lookup failure reads as
// missing credentials; the distinction between "no file" and "service
// unreachable" is logged but not surfaced, the caller's remedy is the same.
func (p *Provider) authenticate(ctx context.Context, userID string) error {
	credentials, err := p.creds.Get(ctx, ServiceName, userID)
	if err != nil {
		if !errors.Is(err, creds.ErrNotFound) {
			logging.Warn("SimpleTools", "Credential lookup for user %s failed: %v", userID, err)
		}
		return p.missingCredentials(userID)
	}
	if credentials.Empty() {
		return p.missingCredentials(userID)
	}

	logging.Debug("SimpleTools", "Successfully retrieved API key for user %s", userID)
	return nil
}

func (p *Provider) missingCredentials(userID string) *api.AuthenticationError {
	message := fmt.Sprintf("Simple Tools API key not found for user %s.", userID)
	if p.environment == "local" {
		message += " Please run authentication first."
	}
	logging.Error("SimpleTools", nil, "%s", message)
	return api.NewAuthenticationError(userID, message)
}

func (p *Provider) handleStoreData(userID string, args map[string]interface{}) (*api.CallToolResult, error) {
	if len(args) == 0 {
		return nil, api.NewInvalidArgumentError(ToolStoreData, "Missing arguments")
	}

	key, _ := args["key"].(string)
	value, _ := args["value"].(string)
	if key == "" || value == "" {
		return nil, api.NewInvalidArgumentError(ToolStoreData, "Missing key or value")
	}

	p.store.Put(userID, key, value)

	return jsonResult(storeResult{
		ID:            newResultID(ActionStore),
		Status:        StatusSuccess,
		Action:        ActionStore,
		Key:           key,
		Value:         value,
		Message:       fmt.Sprintf("Stored '%s' with value: %s", key, value),
		Authenticated: true,
		Timestamp:     time.Now().Unix(),
	})
}

func (p *Provider) handleRetrieveData(userID string, args map[string]interface{}) (*api.CallToolResult, error) {
	if len(args) == 0 {
		return nil, api.NewInvalidArgumentError(ToolRetrieveData, "Missing arguments")
	}

	key, _ := args["key"].(string)
	if key == "" {
		return nil, api.NewInvalidArgumentError(ToolRetrieveData, "Missing key")
	}

	value, ok := p.store.Get(userID, key)
	if !ok {
		return jsonResult(retrieveResult{
			ID:        newResultID(ActionRetrieve),
			Status:    StatusNotFound,
			Action:    ActionRetrieve,
			Key:       key,
			Message:   fmt.Sprintf("Key '%s' not found", key),
			Timestamp: time.Now().Unix(),
		})
	}

	return jsonResult(retrieveResult{
		ID:        newResultID(ActionRetrieve),
		Status:    StatusSuccess,
		Action:    ActionRetrieve,
		Key:       key,
		Value:     value,
		Message:   fmt.Sprintf("Value for '%s': %s", key, value),
		Timestamp: time.Now().Unix(),
	})
}

func (p *Provider) handleListData(userID string) (*api.CallToolResult, error) {
	data := p.store.Snapshot(userID)

	if len(data) == 0 {
		return jsonResult(listResult{
			ID:        newResultID(ActionList),
			Status:    StatusEmpty,
			Action:    ActionList,
			Data:      data,
			Count:     0,
			Message:   "No data stored",
			Timestamp: time.Now().Unix(),
		})
	}

	return jsonResult(listResult{
		ID:            newResultID(ActionList),
		Status:        StatusSuccess,
		Action:        ActionList,
		Data:          data,
		Count:         len(data),
		Message:       fmt.Sprintf("Found %d items", len(data)),
		FormattedList: formatEntries(data),
		Timestamp:     time.Now().Unix(),
	})
}

// formatEntries renders the table as "- key: value" lines sorted by key, so
// repeated listings of the same data read identically.
func formatEntries(data map[string]string) string {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("- %s: %s", k, data[k]))
	}
	return strings.Join(lines, "\n")
}

// newResultID builds ids like "store_1a2b3c4d": the action plus eight hex
// characters of a fresh UUID. Uniqueness is best-effort; nothing keys on
// these ids.
func newResultID(action string) string {
	id := uuid.New()
	return fmt.Sprintf("%s_%x", action, id[:4])
}

// jsonResult wraps a result envelope as a single JSON text content item.
func jsonResult(v interface{}) (*api.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}
	return &api.CallToolResult{
		Content: []interface{}{string(data)},
	}, nil
}
