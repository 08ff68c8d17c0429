package testutils

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
)

type RequestOptions struct {
	headers map[string]string
}

type RequestArgs struct {
	Router http.Handler
	Method string
	URL    string
	Body   io.Reader
}

func MakeRequest(args RequestArgs, opts ...func(*RequestOptions)) *http.Response {
	options := RequestOptions{
		headers: make(map[string]string),
	}
	for _, opt := range opts {
		opt(&options)
	}

	request := httptest.NewRequest(args.Method, args.URL, args.Body)
	for k, v := range options.headers {
		request.Header.Set(k, v)
	}

	recorder := httptest.NewRecorder()
	args.Router.ServeHTTP(recorder, request)

	return recorder.Result()
}

func WithHeader(name, value string) func(*RequestOptions) {
	return func(fn *RequestOptions) {
		fn.headers[name] = value
	}
}

// WithBearer добавляет заголовок Authorization, пустой токен игнорируется.
func WithBearer(token string) func(*RequestOptions) {
	return func(fn *RequestOptions) {
		if token != "" {
			fn.headers["Authorization"] = "Bearer " + token
		}
	}
}

func WithJSON() func(*RequestOptions) {
	return WithHeader("Content-Type", "application/json")
}

// Envelope ответ API в виде, удобном для проверок в тестах.
type Envelope struct {
	Success      bool              `json:"success"`
	Message      string            `json:"message"`
	Data         json.RawMessage   `json:"data"`
	Meta         json.RawMessage   `json:"meta"`
	ErrorSources []json.RawMessage `json:"errorSources"`
	Stack        string            `json:"stack"`
}

// ReadEnvelope читает и закрывает тело ответа.
//
//nolint:nonamedreturns
func ReadEnvelope(res *http.Response) (env *Envelope, err error) {
	defer func() {
		if closeErr := res.Body.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	body, readErr := io.ReadAll(res.Body)
	if readErr != nil {
		return nil, fmt.Errorf("read body: %s", readErr.Error())
	}
	env = new(Envelope)
	if jsonErr := json.Unmarshal(body, env); jsonErr != nil {
		return nil, fmt.Errorf("parse envelope `%s`: %s", string(body), jsonErr.Error())
	}
	return env, nil
}
