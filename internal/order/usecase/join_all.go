package usecase

import (
	"context"
	"sync"

	"ordersvc/internal/dto"
)

type branchFunc func(ctx context.Context) dto.FetchOutcome

// joinAll runs every branch concurrently and waits for all of them to settle.
// There is no early exit: a failing branch cannot abort a sibling, and each
// outcome lands at the index of the branch that produced it, never at the
// position it happened to finish in.
func joinAll(ctx context.Context, branches []branchFunc) []dto.FetchOutcome {
	outcomes := make([]dto.FetchOutcome, len(branches))

	var wg sync.WaitGroup
	for i, branch := range branches {
		wg.Add(1)
		go func(i int, branch branchFunc) {
			defer wg.Done()
			outcomes[i] = branch(ctx)
		}(i, branch)
	}
	wg.Wait()

	return outcomes
}
