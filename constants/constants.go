package constants

import "os"

func GetPort() string {
	port := os.Getenv("PORT")
	if port != "" {
		return port
	}
	return "8080"
}

func GetScoreTable() string {
	table := os.Getenv("SCORE_TABLE")
	if table != "" {
		return table
	}
	return "chordcoach-scores"
}

// GetDynamoEndpoint is empty in production (the SDK resolves the real
// endpoint) and points at dynamodb-local during development.
func GetDynamoEndpoint() string {
	return os.Getenv("DYNAMO_ENDPOINT")
}
