package user

import (
	"strconv"
	"strings"

	"appraise/internal/pkg/errs"
)

// AllowList is the configured set of Telegram identifiers that are permitted
// to hold the APPRAISER role. It is injected at construction time; there is no
// ambient global state behind it.
type AllowList map[int64]struct{}

// NewAllowList builds an AllowList from explicit identifiers.
func NewAllowList(ids ...int64) AllowList {
	list := make(AllowList, len(ids))
	for _, id := range ids {
		list[id] = struct{}{}
	}
	return list
}

// ParseAllowList parses a comma-separated list of Telegram identifiers,
// as configured via APPRAISER_ALLOW_LIST. Blank entries are skipped.
func ParseAllowList(csv string) (AllowList, error) {
	list := make(AllowList)
	for _, part := range strings.Split(csv, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("appraiser allow list", err)
		}
		list[id] = struct{}{}
	}

	return list, nil
}

// Contains reports whether the Telegram identifier is allow-listed.
func (l AllowList) Contains(telegramID int64) bool {
	_, ok := l[telegramID]
	return ok
}
