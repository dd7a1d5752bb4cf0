package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/katalvlaran/gatsp/city"
	"github.com/stretchr/testify/require"
)

// citiesJSON places the standard cities on a line, so the best tour is
// the one walking them in order from the origin.
func citiesJSON() string {
	parts := make([]string, 0, len(city.StandardSymbols))
	for i, s := range city.StandardSymbols {
		parts = append(parts, fmt.Sprintf(`{"name":"%c","x":%d,"y":0}`, s, i*3))
	}
	return `"cities":[` + strings.Join(parts, ",") + `]`
}

func invoke(t *testing.T, body string, b64 bool) (int, map[string]any) {
	t.Helper()
	if b64 {
		body = base64.StdEncoding.EncodeToString([]byte(body))
	}
	resp, err := handler(context.Background(), events.LambdaFunctionURLRequest{Body: body, IsBase64Encoded: b64})
	require.NoError(t, err)
	require.Equal(t, "application/json", resp.Headers["Content-Type"])

	var out map[string]any
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &out))
	return resp.StatusCode, out
}

func TestHandler_Solve(t *testing.T) {
	body := `{"threads":2,"generations":5,"population":200,"pool":100,"tournament":4,"seed":11,"polish":true,` + citiesJSON() + `}`
	for _, b64 := range []bool{false, true} {
		code, out := invoke(t, body, b64)
		require.Equal(t, http.StatusOK, code, out)
		require.Len(t, out["itinerary"], city.Standard.Size())
		require.Equal(t, 5.0, out["generations"])
		// Any open path over 36 collinear cities spans at least 35*3.
		require.GreaterOrEqual(t, out["distance"].(float64), 105.0)
	}
}

func TestHandler_Errors(t *testing.T) {
	cases := []struct {
		name string
		body string
		want int
	}{
		{"not json", `{`, http.StatusBadRequest},
		{"no cities", `{"threads":1}`, http.StatusBadRequest},
		{"bad option", `{"population":10,"pool":3,` + citiesJSON() + `}`, http.StatusBadRequest},
		{"over limit", `{"population":100000,` + citiesJSON() + `}`, http.StatusBadRequest},
		{"negative rate", `{"population":10,"mutationRate":-1,` + citiesJSON() + `}`, http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, out := invoke(t, tc.body, false)
			require.Equal(t, tc.want, code)
			require.NotEmpty(t, out["error"])
		})
	}
}

func TestSolveRequest_Options(t *testing.T) {
	opts, err := solveRequest{Population: 30}.options()
	require.NoError(t, err)
	require.Equal(t, 30, opts.Population)
	require.Equal(t, 14, opts.PoolSize)

	zero := 0
	opts, err = solveRequest{Population: 10, Generations: &zero, MutationRate: &zero}.options()
	require.NoError(t, err)
	require.Equal(t, 0, opts.Generations)
	require.Equal(t, 0, opts.MutationRate)
}
