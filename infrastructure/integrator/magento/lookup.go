package magento

import (
	"context"
	"sync"
)

// Lookup é o resultado de uma consulta individual dentro de um lote.
// Err preenchido não interrompe as demais consultas.
type Lookup[T any] struct {
	Key   string
	Value *T
	Err   error
}

// fanOut executa fetch para cada chave com no máximo maxConcurrent chamadas simultâneas.
// O resultado mantém a ordem das chaves.
func fanOut[T any](ctx context.Context, maxConcurrent int, keys []string, fetch func(ctx context.Context, key string) (*T, error)) []Lookup[T] {
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}

	results := make([]Lookup[T], len(keys))
	semaphore := make(chan struct{}, maxConcurrent)

	var wg sync.WaitGroup
	for i, key := range keys {
		wg.Add(1)

		go func(i int, key string) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			value, err := fetch(ctx, key)
			results[i] = Lookup[T]{Key: key, Value: value, Err: err}
		}(i, key)
	}

	wg.Wait()

	return results
}
