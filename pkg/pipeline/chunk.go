package pipeline

import (
	"bufio"
	"context"
	"os"

	"github.com/google/uuid"
)

// Chunk reads filePath line by line and sends chunks of up to chunkSize
// lines on out. The channel is closed before returning, even on error.
func Chunk(ctx context.Context, filePath string, chunkSize int, out chan<- []string) error {
	defer close(out)

	if chunkSize <= 0 {
		chunkSize = 1
	}

	file, err := os.Open(filePath)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	var chunk []string
	for scanner.Scan() {
		chunk = append(chunk, scanner.Text())
		if len(chunk) >= chunkSize {
			select {
			case out <- chunk:
				chunk = nil
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	if len(chunk) > 0 {
		select {
		case out <- chunk:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

// ChunkItems reads filePath and returns its chunks as work items ready
// for Run, one item per chunk.
func ChunkItems(ctx context.Context, filePath string, chunkSize int) ([]WorkItem[[]string], error) {
	chunks := make(chan []string, 100)
	errCh := make(chan error, 1)
	go func() {
		errCh <- Chunk(ctx, filePath, chunkSize, chunks)
	}()

	var items []WorkItem[[]string]
	for chunk := range chunks {
		items = append(items, WorkItem[[]string]{
			ID:    uuid.New().String(),
			Input: chunk,
		})
	}
	if err := <-errCh; err != nil {
		return nil, err
	}
	return items, nil
}
