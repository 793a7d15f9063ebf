package services

import (
	"context"
	"fmt"
	"strings"

	"hopa-consensus/pkg/logger"

	"go.uber.org/zap"
)

const (
	keywordReplyPrefix = "[关键词:"
	keywordReplySuffix = "]"
	keywordDelimiter   = ","

	KeywordInstruction = "请从下面这句来自用户的共识需求表达当中提取共识场景的关键词,要求至少2个,每个词不超过2个字,能够作为这种场景的唯一标识" +
		"输出格式:[关键词:关键词1,关键词2,......]"
)

// Completer is a text completion capability: one system instruction and one
// user message in, the reply text out.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// KeywordExtractor asks the completer for scenario keywords. It makes exactly
// one call per request and never retries.
type KeywordExtractor struct {
	completer Completer
}

func NewKeywordExtractor(completer Completer) *KeywordExtractor {
	return &KeywordExtractor{completer: completer}
}

// Extract returns the keywords of requirement. A reply outside the
// [关键词:a,b] format fails with *ParseError.
func (e *KeywordExtractor) Extract(ctx context.Context, requirement string) ([]string, error) {
	if strings.TrimSpace(requirement) == "" {
		return nil, ErrEmptyRequirement
	}

	reply, err := e.completer.Complete(ctx, KeywordInstruction, requirement)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompletionFailed, err)
	}

	keywords, err := ParseKeywordReply(reply)
	if err != nil {
		logger.Log.Warn("keyword reply rejected", zap.String("reply", reply), zap.Error(err))
		return nil, err
	}

	logger.Log.Info("keywords extracted", zap.Strings("keywords", keywords))
	return keywords, nil
}

// ParseKeywordReply reads a reply of the form [关键词:kw1,kw2,...].
func ParseKeywordReply(reply string) ([]string, error) {
	trimmed := strings.TrimSpace(reply)
	if !strings.HasPrefix(trimmed, keywordReplyPrefix) {
		return nil, &ParseError{Reply: reply, Reason: "missing " + keywordReplyPrefix + " prefix"}
	}
	if !strings.HasSuffix(trimmed, keywordReplySuffix) {
		return nil, &ParseError{Reply: reply, Reason: "missing closing bracket"}
	}

	body := strings.TrimSuffix(strings.TrimPrefix(trimmed, keywordReplyPrefix), keywordReplySuffix)

	var keywords []string
	for _, kw := range strings.Split(body, keywordDelimiter) {
		if kw = strings.TrimSpace(kw); kw != "" {
			keywords = append(keywords, kw)
		}
	}
	if len(keywords) == 0 {
		return nil, &ParseError{Reply: reply, Reason: "no keywords"}
	}

	return keywords, nil
}
