package api

import (
	"net/url"

	"github.com/tidwall/gjson"

	apierrors "github.com/diogo/bardweb/internal/errors"
	"github.com/diogo/bardweb/internal/models"
)

// batchExecute performs a single-RPC batchexecute call and returns the
// double-decoded payload of the wrb.fr line plus the HTTP status code.
// Must be called with c.mu held.
func (c *BardClient) batchExecute(rpcID, payload string, extraParams url.Values) (gjson.Result, int, error) {
	envelope, err := buildRPCEnvelope(rpcID, payload)
	if err != nil {
		return gjson.Result{}, 0, err
	}

	params := queryParams(c.state.ReqID)
	for key, values := range extraParams {
		for _, value := range values {
			params.Add(key, value)
		}
	}

	body, statusCode, err := c.postForm(models.EndpointBatchExec, params, envelope)
	if err != nil {
		return gjson.Result{}, statusCode, err
	}

	// Same framing as the streamed answer: the payload string sits at
	// [0][2] of the marked line, itself JSON.
	lines := payloadLines(body)
	for i := len(lines) - 1; i >= 0; i-- {
		data := gjson.Get(lines[i], PathLinePayload)
		if data.Type != gjson.String || data.String() == "" {
			continue
		}
		return gjson.Parse(data.String()), statusCode, nil
	}

	return gjson.Result{}, statusCode, apierrors.NewEmptyResponseError(string(body))
}
