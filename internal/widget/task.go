package widget

import "context"

// Task — результат асинхронного сетевого вызова конвейера.
// Завершается после того, как обработчик завершения отработал под мьютексом конвейера.
type Task struct {
	Op  string
	Key string

	done chan struct{}
	err  error
}

func newTask(op, key string) *Task {
	return &Task{Op: op, Key: key, done: make(chan struct{})}
}

// doneTask — задача, завершённая без сетевого вызова.
func doneTask(op, key string, err error) *Task {
	t := newTask(op, key)
	t.finish(err)
	return t
}

func (t *Task) finish(err error) {
	t.err = err
	close(t.done)
}

// Done — закрывается по завершении задачи.
func (t *Task) Done() <-chan struct{} { return t.done }

// Err — ошибка задачи; до завершения всегда nil.
func (t *Task) Err() error {
	select {
	case <-t.done:
		return t.err
	default:
		return nil
	}
}

// Wait — ждёт завершения задачи или отмены ctx.
func (t *Task) Wait(ctx context.Context) error {
	select {
	case <-t.done:
		return t.err
	case <-ctx.Done():
		return ctx.Err()
	}
}
