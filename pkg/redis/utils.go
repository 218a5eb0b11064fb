package redis

import (
	"context"
	"fmt"
)

// ScanKeys collects every key matching pattern using SCAN, never KEYS.
func ScanKeys(ctx context.Context, client *Client, pattern string, count int64) ([]string, error) {
	var keys []string
	var cursor uint64

	for {
		scanKeys, nextCursor, err := client.Scan(ctx, cursor, pattern, count)
		if err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}

		keys = append(keys, scanKeys...)
		cursor = nextCursor

		if cursor == 0 {
			break
		}
	}

	return keys, nil
}

// DeleteKeysByPattern deletes all keys matching a pattern in batches of batchSize
func DeleteKeysByPattern(ctx context.Context, client *Client, pattern string, batchSize int64) (int, error) {
	if batchSize <= 0 {
		batchSize = 100
	}

	keys, err := ScanKeys(ctx, client, pattern, batchSize)
	if err != nil {
		return 0, fmt.Errorf("failed to scan keys: %w", err)
	}

	for i := 0; i < len(keys); i += int(batchSize) {
		end := min(i+int(batchSize), len(keys))
		if err := client.Delete(ctx, keys[i:end]...); err != nil {
			return i, fmt.Errorf("failed to delete batch: %w", err)
		}
	}

	return len(keys), nil
}
