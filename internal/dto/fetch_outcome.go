package dto

import "encoding/json"

type FetchStatus string

const (
	FetchFound               FetchStatus = "FOUND"
	FetchUpstreamNotFound    FetchStatus = "UPSTREAM_NOT_FOUND"
	FetchUpstreamUnavailable FetchStatus = "UPSTREAM_UNAVAILABLE"
)

// FetchOutcome is the settled result of one dependency fetch branch. Details
// is only set when Status is FetchFound.
type FetchOutcome struct {
	Status  FetchStatus
	Details json.RawMessage
}

func Found(details json.RawMessage) FetchOutcome {
	return FetchOutcome{Status: FetchFound, Details: details}
}

func UpstreamNotFound() FetchOutcome {
	return FetchOutcome{Status: FetchUpstreamNotFound}
}

func UpstreamUnavailable() FetchOutcome {
	return FetchOutcome{Status: FetchUpstreamUnavailable}
}
