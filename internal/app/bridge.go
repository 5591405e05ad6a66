package app

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/julianstephens/growthbook/internal/constants"
	"github.com/julianstephens/growthbook/internal/logger"
	"github.com/julianstephens/growthbook/internal/models"
)

// maxRequestBytes bounds a single request line; journal entries can be long
const maxRequestBytes = 16 << 20

// Request is one line on the bridge input.
type Request struct {
	ID   json.RawMessage `json:"id,omitempty"`
	Cmd  string          `json:"cmd"`
	Args json.RawMessage `json:"args,omitempty"`
}

// Response is written as one line per request. Result is null for an absent
// page and for a successful save.
type Response struct {
	ID     json.RawMessage `json:"id,omitempty"`
	OK     bool            `json:"ok"`
	Result any             `json:"result"`
	Error  string          `json:"error,omitempty"`
}

type fetchArgs struct {
	Date *string `json:"date"`
}

type saveArgs struct {
	Payload *pagePayload `json:"payload"`
}

// pagePayload requires every field so a save can never be a partial update
type pagePayload struct {
	Date       *string `json:"date"`
	Schedule   *string `json:"schedule"`
	Todo       *string `json:"todo"`
	Goals      *string `json:"goals"`
	Motivation *string `json:"motivation"`
	Happiness  *int64  `json:"happiness"`
	Journal    *string `json:"journal"`
}

func (p pagePayload) page() (models.Page, error) {
	missing := ""
	switch {
	case p.Date == nil:
		missing = "date"
	case p.Schedule == nil:
		missing = "schedule"
	case p.Todo == nil:
		missing = "todo"
	case p.Goals == nil:
		missing = "goals"
	case p.Motivation == nil:
		missing = "motivation"
	case p.Happiness == nil:
		missing = "happiness"
	case p.Journal == nil:
		missing = "journal"
	}
	if missing != "" {
		return models.Page{}, fmt.Errorf("invalid payload: missing field `%s`", missing)
	}

	return models.Page{
		Date:       *p.Date,
		Schedule:   *p.Schedule,
		Todo:       *p.Todo,
		Goals:      *p.Goals,
		Motivation: *p.Motivation,
		Happiness:  *p.Happiness,
		Journal:    *p.Journal,
	}, nil
}

// Handle dispatches a single named request.
func (a *App) Handle(req Request) Response {
	result, err := a.dispatch(req)
	if err != nil {
		return Response{ID: req.ID, Error: err.Error()}
	}
	return Response{ID: req.ID, OK: true, Result: result}
}

func (a *App) dispatch(req Request) (any, error) {
	switch req.Cmd {
	case constants.CmdGetDailyPage:
		var args fetchArgs
		if err := decodeArgs(req.Args, &args); err != nil {
			return nil, err
		}
		if args.Date == nil {
			return nil, fmt.Errorf("invalid args: missing field `date`")
		}
		page, err := a.FetchPage(*args.Date)
		if err != nil {
			return nil, err
		}
		if page == nil {
			return nil, nil
		}
		return page, nil

	case constants.CmdSaveDailyPage:
		var args saveArgs
		if err := decodeArgs(req.Args, &args); err != nil {
			return nil, err
		}
		if args.Payload == nil {
			return nil, fmt.Errorf("invalid args: missing field `payload`")
		}
		page, err := args.Payload.page()
		if err != nil {
			return nil, err
		}
		return nil, a.SavePage(page)

	case constants.CmdGetDBPath:
		return a.GetStorageLocation()

	default:
		return nil, fmt.Errorf("unknown command %q", req.Cmd)
	}
}

func decodeArgs(raw json.RawMessage, v any) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("invalid args: %v", err)
	}
	return nil
}

// Serve reads line-delimited requests from r and writes one response line per
// request to w until r is exhausted. Malformed lines get an error response and
// do not stop the loop.
func (a *App) Serve(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxRequestBytes)
	enc := json.NewEncoder(w)

	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var resp Response
		var req Request
		if err := json.Unmarshal(line, &req); err != nil {
			resp = Response{Error: fmt.Sprintf("malformed request: %v", err)}
		} else {
			logger.Debug("Bridge request", "cmd", req.Cmd)
			resp = a.Handle(req)
		}

		if err := enc.Encode(resp); err != nil {
			return fmt.Errorf("failed to write response: %w", err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read request: %w", err)
	}
	return nil
}
