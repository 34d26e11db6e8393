package console

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/fleetdesk/internal/livequery"
	"github.com/dmitrijs2005/fleetdesk/internal/models"
)

// Watch opens a live session on one guarded query: the result set is
// re-printed whenever a write touches a table the query read. Typing a
// new term re-binds the search (debounced, so quick corrections issue
// one query); a single "." on its own line ends the session.
func (a *App) Watch(ctx context.Context, entity, term, filter string) error {
	v, ok := a.views()[entity]
	if !ok {
		fmt.Println("Unknown entity:", entity)
		return nil
	}
	if !a.authorize(ctx, v.perms...) {
		return nil
	}
	if filter == "" {
		filter = models.FilterAll
	}

	var (
		mu          sync.Mutex
		currentTerm = term
	)

	wctx, cancel := context.WithCancel(ctx)
	defer cancel()

	handle := livequery.Observe(wctx, a.bus, func(ctx context.Context) ([]string, error) {
		mu.Lock()
		t := currentTerm
		mu.Unlock()
		return v.search(ctx, t, filter)
	})
	defer handle.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for rows := range handle.Updates() {
			mu.Lock()
			t := currentTerm
			mu.Unlock()
			fmt.Printf("--- %s (term %q, filter %q) ---\n", entity, t, filter)
			printRows(rows)
			if err := handle.Err(); err != nil {
				fmt.Println("Last refresh failed:", err)
			}
		}
	}()

	debouncer := livequery.NewDebouncer(a.config.SearchDebounce)
	defer debouncer.Stop()

	fmt.Println("Watching. Type a new search term, or '.' to stop.")
	for {
		line, err := a.reader.ReadString('\n')
		if err != nil {
			break
		}
		line = strings.TrimSpace(line)
		if line == "." {
			break
		}
		mu.Lock()
		currentTerm = line
		mu.Unlock()
		debouncer.Trigger(handle.Refresh)
	}

	cancel()
	<-done
	return nil
}
