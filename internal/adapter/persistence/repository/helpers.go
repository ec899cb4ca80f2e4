package repository

import (
	"errors"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func nowString() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

func isConditionFailed(err error) bool {
	var cfe *types.ConditionalCheckFailedException
	return errors.As(err, &cfe)
}

// canceledByCondition reports whether the transaction was canceled because the
// condition of its i-th item failed.
func canceledByCondition(err error, i int) bool {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) || i >= len(tce.CancellationReasons) {
		return false
	}
	return aws.ToString(tce.CancellationReasons[i].Code) == "ConditionalCheckFailed"
}

// sortByCreation orders scanned items by creation time, then id. Scan output
// has no defined order.
func sortByCreation[T any](items []T, createdAt func(T) string, id func(T) string) {
	sort.SliceStable(items, func(i, j int) bool {
		ci, cj := createdAt(items[i]), createdAt(items[j])
		if ci != cj {
			return ci < cj
		}
		return id(items[i]) < id(items[j])
	})
}
