package exportfile

import "encoding/json"

// RawPost is one record as exporters emit it. Exports disagree on which
// fields they populate, so everything is optional
type RawPost struct {
	PostID       string `json:"tweetId"`
	Text         string `json:"tweetText"`
	ScreenName   string `json:"screenName"`
	DisplayName  string `json:"userName"`
	Timestamp    string `json:"timestamp"` // RFC3339
	LikeCount    any    `json:"likeCount"` // ints arrive as numbers or "1,234" strings
	RetweetCount any    `json:"retweetCount"`
	ReplyCount   any    `json:"replyCount"`
	QuoteCount   any    `json:"quoteCount"`
	ViewCount    any    `json:"viewCount"`
}

// envelope is the wrapped export shape: {"data": [...]}
type envelope struct {
	Data []RawPost `json:"data"`
}

// decodePosts tolerates both wrapped objects and bare arrays
func decodePosts(raw []byte) ([]RawPost, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil && env.Data != nil {
		return env.Data, nil
	}
	var bare []RawPost
	if err := json.Unmarshal(raw, &bare); err != nil {
		return nil, err
	}
	return bare, nil
}
