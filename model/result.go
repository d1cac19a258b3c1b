package model

import (
	"encoding/json"
	"time"
)

type ResultStatus string

const (
	SUCCESS ResultStatus = "success"
	FAILURE ResultStatus = "failure"
)

// FailureResult is the envelope every HTTP error response carries.
func FailureResult(err error) *Result {
	return &Result{
		Status: FAILURE,
		Msg:    err.Error(),
		Time:   time.Now(),
	}
}

type Result struct {
	Status ResultStatus
	Msg    string
	Data   any
	Time   time.Time
}

func (r *Result) MarshalJSON() ([]byte, error) {
	output := struct {
		Status ResultStatus    `json:"status"`
		Msg    string          `json:"msg"`
		Data   json.RawMessage `json:"data"`
		Time   time.Time       `json:"time"`
	}{
		Status: r.Status,
		Msg:    r.Msg,
		Time:   r.Time,
	}

	if r.Data != nil {
		bs, err := json.Marshal(r.Data)
		if err != nil {
			return nil, err
		}

		output.Data = bs
	}

	return json.Marshal(&output)
}

func (r *Result) UnmarshalJSON(data []byte) error {
	var input struct {
		Status ResultStatus    `json:"status"`
		Msg    string          `json:"msg"`
		Data   json.RawMessage `json:"data"`
		Time   time.Time       `json:"time"`
	}

	if err := json.Unmarshal(data, &input); err != nil {
		return err
	}

	r.Status = input.Status
	r.Msg = input.Msg
	r.Time = input.Time

	if len(input.Data) > 0 {
		r.Data = input.Data
	}

	return nil
}
