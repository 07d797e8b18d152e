package main

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/cours-de-latin/rucalc"
)

// ---- JSON response types ------------------------------------------------

type evaluateRequest struct {
	Expression string `json:"expression"`
}

type evaluateResponse struct {
	Expression string `json:"expression"`
	Result     string `json:"result"`
	Fraction   string `json:"fraction"`
}

type tokenJSON struct {
	Kind  string `json:"kind"`
	Value string `json:"value"`
}

type tokensResponse struct {
	Expression string      `json:"expression"`
	Tokens     []tokenJSON `json:"tokens"`
	Postfix    string      `json:"postfix,omitempty"`
}

type entryJSON struct {
	Phrase string `json:"phrase"`
	Value  int64  `json:"value,omitempty"`
	Symbol string `json:"symbol,omitempty"`
}

type lexiconResponse struct {
	Categories map[string][]entryJSON `json:"categories"`
}

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
	Hint  string `json:"hint,omitempty"`
}

// ---- helpers ------------------------------------------------------------

func writeJSON(log *zap.Logger, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		log.Warn("encode response", zap.Error(err))
	}
}

func writeError(log *zap.Logger, w http.ResponseWriter, status int, msg string) {
	writeJSON(log, w, status, errorResponse{Error: msg})
}

// writeCalcError maps a calculator error to its status: 422 for
// expressions that could not be read, 400 for arithmetic failures.
func writeCalcError(log *zap.Logger, w http.ResponseWriter, err error) {
	resp := errorResponse{Error: err.Error()}
	status := http.StatusBadRequest
	if rucalc.IsParseError(err) {
		status = http.StatusUnprocessableEntity
	}
	var e *rucalc.Error
	if errors.As(err, &e) {
		resp.Kind = e.Kind.String()
		resp.Hint = e.Hint()
	}
	writeJSON(log, w, status, resp)
}

// expression reads the expression from ?expr= on GET or from the JSON body
// on POST. It reports false after writing an error response.
func expression(log *zap.Logger, w http.ResponseWriter, r *http.Request) (string, bool) {
	switch r.Method {
	case http.MethodGet:
		expr := r.URL.Query().Get("expr")
		if expr == "" {
			writeError(log, w, http.StatusBadRequest, "missing 'expr' query parameter")
			return "", false
		}
		return expr, true
	case http.MethodPost:
		var body evaluateRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&body); err != nil || body.Expression == "" {
			writeError(log, w, http.StatusBadRequest, "body must be JSON with a non-empty 'expression' field")
			return "", false
		}
		return body.Expression, true
	default:
		writeError(log, w, http.StatusMethodNotAllowed, "GET or POST required")
		return "", false
	}
}

const maxBodyBytes = 64 << 10

// ---- handlers -----------------------------------------------------------

func handleEvaluate(calc *rucalc.Calculator, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		expr, ok := expression(log, w, r)
		if !ok {
			return
		}
		v, err := calc.EvaluateRat(expr)
		if err != nil {
			writeCalcError(log, w, err)
			return
		}
		writeJSON(log, w, http.StatusOK, evaluateResponse{
			Expression: expr,
			Result:     rucalc.Render(v),
			Fraction:   v.RatString(),
		})
	}
}

func handleTokens(calc *rucalc.Calculator, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		expr, ok := expression(log, w, r)
		if !ok {
			return
		}
		tokens := calc.Tokenize(expr)
		out := make([]tokenJSON, 0, len(tokens))
		for _, tok := range tokens {
			out = append(out, tokenJSON{Kind: tok.Kind.String(), Value: tok.Value})
		}
		resp := tokensResponse{Expression: expr, Tokens: out}
		// The postfix form is best effort; tokens are shown even when the
		// expression does not parse.
		if elems, err := calc.Postfix(expr); err == nil {
			resp.Postfix = rucalc.FormatPostfix(elems)
		}
		writeJSON(log, w, http.StatusOK, resp)
	}
}

func handleLexicon(calc *rucalc.Calculator, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(log, w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		cats := make(map[string][]entryJSON)
		for _, e := range calc.Lexicon().Entries() {
			name := e.Category.String()
			cats[name] = append(cats[name], entryJSON{Phrase: e.Phrase, Value: e.Value, Symbol: e.Symbol})
		}
		writeJSON(log, w, http.StatusOK, lexiconResponse{Categories: cats})
	}
}

// ---- middleware ---------------------------------------------------------

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// logRequests logs one line per request.
func logRequests(log *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

func newMux(calc *rucalc.Calculator, log *zap.Logger) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/evaluate", handleEvaluate(calc, log))
	mux.HandleFunc("/api/tokens", handleTokens(calc, log))
	mux.HandleFunc("/api/lexicon", handleLexicon(calc, log))
	return mux
}
