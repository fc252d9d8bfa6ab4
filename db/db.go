package db

import (
	"strconv"

	"github.com/google/uuid"
	"github.com/jsphweid/chordcoach/constants"
	"github.com/jsphweid/chordcoach/model"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
)

func newClient() *dynamodb.DynamoDB {
	config := aws.Config{}
	if endpoint := constants.GetDynamoEndpoint(); endpoint != "" {
		config.Endpoint = &endpoint
		config.Region = aws.String("localhost")
	}

	sess, err := session.NewSession(&config)
	if err != nil {
		panic("Could not create a new DynamoDB session because " + err.Error())
	}
	return dynamodb.New(sess)
}

// PutAttempt records one answered prompt under its session. Scorekeeping
// is best effort: callers treat an error as a degraded session, not a
// failed request.
func PutAttempt(a model.Attempt) error {
	item := map[string]*dynamodb.AttributeValue{
		"PK":         {S: aws.String(a.SessionId)},
		"SK":         {S: aws.String(uuid.New().String())},
		"ChordId":    {N: aws.String(strconv.Itoa(a.ChordId))},
		"ChordName":  {S: aws.String(a.ChordName)},
		"Difficulty": {S: aws.String(a.Difficulty)},
		"Correct":    {BOOL: aws.Bool(a.Correct)},
		"Millis":     {N: aws.String(strconv.FormatUint(uint64(a.Millis), 10))},
	}

	_, err := newClient().PutItem(&dynamodb.PutItemInput{
		TableName: aws.String(constants.GetScoreTable()),
		Item:      item,
	})
	return err
}

// GetSession fetches every attempt recorded under a session id and
// totals them up.
func GetSession(sessionId string) (model.SessionScore, error) {
	res := model.SessionScore{SessionId: sessionId}

	out, err := newClient().Query(&dynamodb.QueryInput{
		TableName:              aws.String(constants.GetScoreTable()),
		KeyConditionExpression: aws.String("PK = :pk"),
		ExpressionAttributeValues: map[string]*dynamodb.AttributeValue{
			":pk": {S: aws.String(sessionId)},
		},
	})
	if err != nil {
		return res, err
	}

	for _, item := range out.Items {
		var a model.Attempt
		a.SessionId = sessionId
		if item["ChordId"] != nil && item["ChordId"].N != nil {
			id, _ := strconv.Atoi(*item["ChordId"].N)
			a.ChordId = id
		}
		if item["ChordName"] != nil && item["ChordName"].S != nil {
			a.ChordName = *item["ChordName"].S
		}
		if item["Difficulty"] != nil && item["Difficulty"].S != nil {
			a.Difficulty = *item["Difficulty"].S
		}
		if item["Correct"] != nil && item["Correct"].BOOL != nil {
			a.Correct = *item["Correct"].BOOL
		}
		if item["Millis"] != nil && item["Millis"].N != nil {
			millis, _ := strconv.ParseUint(*item["Millis"].N, 10, 32)
			a.Millis = uint32(millis)
		}
		res.Attempts = append(res.Attempts, a)
		res.NumAttempts += 1
		if a.Correct {
			res.NumCorrect += 1
		}
	}

	return res, nil
}
