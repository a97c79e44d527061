// Package batch 在协程池上对多个只读视图并发执行查找
package batch

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/ayanghuang/stringview/view"
)

const defaultPoolSize = 64

var ErrTaskPanic = errors.New("batch: search task panicked")

// Searcher 视图只读，多个协程同时读同一块缓冲区是安全的，前提是没有人在修改它
type Searcher struct {
	pool *ants.Pool
}

// NewSearcher size <= 0 时使用默认大小
func NewSearcher(size int) (*Searcher, error) {
	if size <= 0 {
		size = defaultPoolSize
	}
	pool, err := ants.NewPool(size)
	if err != nil {
		return nil, err
	}
	return &Searcher{pool: pool}, nil
}

// FindAll 返回 needle 在每个 haystack 中 Find(needle, 0) 的结果，顺序与 haystacks 一致
func (s *Searcher) FindAll(haystacks []view.View[byte], needle view.View[byte]) ([]int, error) {
	return s.run(haystacks, func(h view.View[byte]) int {
		return h.Find(needle, 0)
	})
}

// FindFirstOfAll 对每个 haystack 执行 FindFirstOf(set, 0)
func (s *Searcher) FindFirstOfAll(haystacks []view.View[byte], set view.View[byte]) ([]int, error) {
	return s.run(haystacks, func(h view.View[byte]) int {
		return h.FindFirstOf(set, 0)
	})
}

// run 任一任务 panic 时返回 ErrTaskPanic，不返回部分结果
func (s *Searcher) run(haystacks []view.View[byte], fn func(view.View[byte]) int) ([]int, error) {
	result := make([]int, len(haystacks))
	w := &sync.WaitGroup{}
	mu := sync.Mutex{}
	var failed error

	for i := range haystacks {
		i := i
		w.Add(1)
		err := s.pool.Submit(func() {
			defer w.Done()
			defer func() {
				if p := recover(); p != nil {
					log.Println("batch: search task panic:", p)
					mu.Lock()
					if failed == nil {
						failed = fmt.Errorf("%w: haystack %d: %v", ErrTaskPanic, i, p)
					}
					mu.Unlock()
				}
			}()
			result[i] = fn(haystacks[i])
		})
		if err != nil {
			w.Done()
			w.Wait()
			return nil, err
		}
	}
	w.Wait()

	if failed != nil {
		return nil, failed
	}
	return result, nil
}

func (s *Searcher) Release() {
	s.pool.Release()
}
