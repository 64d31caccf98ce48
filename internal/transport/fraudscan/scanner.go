// Package fraudscan - периодический скан журнала транзакций отложенными правилами фрода.
package fraudscan

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/jhanaviii/digital-wallet/internal/domain"
	"github.com/jhanaviii/digital-wallet/internal/fraud"
)

const (
	defaultServiceTimeout      = 3 * time.Second
	defaultScanInterval        = 24 * time.Hour
	defaultFlagWorkers    uint = 5
)

const (
	RuleLargeWithdrawals         = "multiple_large_withdrawals"
	RuleDepositWithdrawalPattern = "deposit_withdrawal_pattern"
)

// Scanner прогоняет отложенные правила по расписанию и флагует найденные транзакции
// через сервисный слой.
type Scanner struct {
	svs         Servicer
	l           *logrus.Entry
	interval    time.Duration
	flagWorkers uint
}

// New создает новый экземпляр сканера.
func New(svs Servicer, l *logrus.Logger) *Scanner {
	loggerEntry := l.WithFields(logrus.Fields{
		"component": "fraudscan",
		"module":    "scanner",
	})

	return &Scanner{
		svs:         svs,
		l:           loggerEntry,
		interval:    defaultScanInterval,
		flagWorkers: defaultFlagWorkers,
	}
}

// SetInterval устанавливает период между сканами.
func (s *Scanner) SetInterval(interval time.Duration) *Scanner {
	if interval > 0 {
		s.interval = interval
	}
	return s
}

// SetFlagWorkers устанавливает кол-во воркеров, флагующих найденные транзакции.
func (s *Scanner) SetFlagWorkers(workers uint) *Scanner {
	if workers > 0 {
		s.flagWorkers = workers
	}
	return s
}

// Run запускает бесконечный цикл сканирования до отмены контекста. Первый скан
// выполняется сразу, последующие по тикеру.
func (s *Scanner) Run(ctx context.Context) {
	s.l.WithFields(logrus.Fields{
		"interval":    s.interval.String(),
		"flagWorkers": s.flagWorkers,
	}).Info("Starting")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		if err := s.Sweep(ctx); err != nil && !errors.Is(err, ErrNoCandidates) {
			s.l.WithError(err).Error("sweep error")
		}

		select {
		case <-ctx.Done():
			s.l.Info("Got stop signal, exiting...")
			return
		case <-ticker.C:
		}
	}
}

// flagTask - одна транзакция на флагование вместе с причиной и правилом, которое ее нашло.
type flagTask struct {
	transaction domain.Transaction
	rule        string
	reason      string
	severity    domain.SeverityType
}

type flagResult struct {
	task *flagTask
	err  error
}

// Sweep выполняет один проход: собирает кандидатов обоих правил и флагует их пулом
// воркеров. Ошибка флагования одной транзакции не прерывает проход, она логируется и
// транзакция пропускается. Возвращает ErrNoCandidates если флаговать нечего.
func (s *Scanner) Sweep(ctx context.Context) error {
	tasks, produceErr := s.produce(ctx)
	if produceErr != nil {
		return fmt.Errorf("sweep: %w", produceErr)
	}

	results := s.runWorkers(ctx, tasks)

	byRule := make(map[string]int)
	bySeverity := make(map[domain.SeverityType]int)
	var failed int
	for _, result := range results {
		if result.err != nil {
			failed++
			continue
		}
		byRule[result.task.rule]++
		bySeverity[result.task.severity]++
	}

	s.l.WithFields(logrus.Fields{
		"candidates": len(tasks),
		"byRule":     byRule,
		"bySeverity": bySeverity,
		"failed":     failed,
	}).Info("Sweep finished")
	return nil
}

// produce собирает кандидатов обоих правил. Кандидаты, найденные обоими правилами,
// дедуплицируются в пользу более строгого правила.
func (s *Scanner) produce(ctx context.Context) ([]flagTask, error) {
	produceCtx, cancel := context.WithTimeout(ctx, defaultServiceTimeout)
	defer cancel()

	large, largeErr := s.svs.LargeWithdrawalCandidates(produceCtx)
	if largeErr != nil {
		return nil, fmt.Errorf("produce: %w", largeErr)
	}
	pattern, patternErr := s.svs.DepositWithdrawalCandidates(produceCtx)
	if patternErr != nil {
		return nil, fmt.Errorf("produce: %w", patternErr)
	}

	seen := make(map[string]struct{}, len(large))
	tasks := make([]flagTask, 0, len(large)+len(pattern))
	for _, transaction := range large {
		seen[transaction.ID.String()] = struct{}{}
		tasks = append(tasks, flagTask{
			transaction: transaction,
			rule:        RuleLargeWithdrawals,
			reason:      fraud.ReasonMultipleLargeWithdrawals + fraud.ScanReasonSuffix,
			severity:    domain.SeverityHigh,
		})
	}
	for _, transaction := range pattern {
		if _, ok := seen[transaction.ID.String()]; ok {
			continue
		}
		tasks = append(tasks, flagTask{
			transaction: transaction,
			rule:        RuleDepositWithdrawalPattern,
			reason:      fraud.ReasonDepositWithdrawalPattern + fraud.ScanReasonSuffix,
			severity:    domain.SeverityMedium,
		})
	}

	if len(tasks) == 0 {
		return nil, ErrNoCandidates
	}
	return tasks, nil
}

// runWorkers флагует кандидатов параллельными воркерами и ожидает конца их работы.
// Реализует паттерн fan-out/fan-in.
func (s *Scanner) runWorkers(ctx context.Context, tasks []flagTask) []flagResult {
	taskCh := make(chan *flagTask, len(tasks))
	for i := range tasks {
		taskCh <- &tasks[i]
	}
	close(taskCh)

	wg := new(sync.WaitGroup)
	wg.Add(int(s.flagWorkers)) // nolint:gosec

	resultCh := make(chan *flagResult, len(tasks))

	for range s.flagWorkers {
		go s.worker(ctx, wg, taskCh, resultCh)
	}
	wg.Wait()

	close(resultCh)

	results := make([]flagResult, 0, len(tasks))
	for result := range resultCh {
		l := s.l.WithFields(logrus.Fields{
			"transactionID": result.task.transaction.ID,
			"rule":          result.task.rule,
			"severity":      result.task.severity,
		})
		if result.err != nil {
			l.WithError(result.err).Error("flag transaction")
		} else {
			l.Info("Flagged")
		}
		results = append(results, *result)
	}
	return results
}

func (s *Scanner) worker(
	ctx context.Context,
	wg *sync.WaitGroup,
	taskCh <-chan *flagTask,
	resultCh chan<- *flagResult,
) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case task, ok := <-taskCh:
			if !ok {
				return
			}
			reqCtx, cancel := context.WithTimeout(ctx, defaultServiceTimeout)
			_, err := s.svs.FlagTransaction(reqCtx, task.transaction.ID, task.reason, task.severity)
			cancel()
			resultCh <- &flagResult{task: task, err: err}
		}
	}
}
