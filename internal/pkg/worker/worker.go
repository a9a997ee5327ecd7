package worker

import (
	"time"

	"microblog/internal/pkg/uploader"

	"go.uber.org/zap"
)

// CleanupTask 对象清理任务，头像被替换后旧文件异步删除
type CleanupTask struct {
	ObjectURL string
	Retry     int // 重试次数
}

// Pool 清理任务工作池
type Pool struct {
	TaskQueue  chan CleanupTask
	RetryQueue chan CleanupTask // 重试队列
	Uploader   uploader.Uploader
	Log        *zap.Logger
	WorkerNum  int
	MaxRetry   int
}

// NewPool 创建工作池
func NewPool(up uploader.Uploader, log *zap.Logger, workerNum, bufferSize int) *Pool {
	return &Pool{
		TaskQueue:  make(chan CleanupTask, bufferSize),
		RetryQueue: make(chan CleanupTask, bufferSize/2),
		Uploader:   up,
		Log:        log,
		WorkerNum:  workerNum,
		MaxRetry:   3,
	}
}

// Start 启动工作协程
func (p *Pool) Start() {
	for i := 0; i < p.WorkerNum; i++ {
		go p.worker(i)
	}
	go p.retryWorker()
	p.Log.Info("cleanup worker pool started", zap.Int("workers", p.WorkerNum))
}

// Enqueue 提交清理任务，队列满时丢弃并记录
func (p *Pool) Enqueue(objectURL string) {
	task := CleanupTask{ObjectURL: objectURL}
	select {
	case p.TaskQueue <- task:
	default:
		p.Log.Warn("cleanup queue full, task dropped", zap.String("object", objectURL))
	}
}

func (p *Pool) worker(id int) {
	for task := range p.TaskQueue {
		if err := p.Uploader.Delete(task.ObjectURL); err != nil {
			p.Log.Warn("cleanup failed",
				zap.Int("worker", id),
				zap.String("object", task.ObjectURL),
				zap.Int("attempt", task.Retry),
				zap.Error(err),
			)

			if task.Retry < p.MaxRetry {
				task.Retry++
				select {
				case p.RetryQueue <- task:
				default:
					p.Log.Error("retry queue full, task dropped", zap.String("object", task.ObjectURL))
				}
			} else {
				p.Log.Error("cleanup exceeded max retries, dropped", zap.String("object", task.ObjectURL))
			}
			continue
		}

		p.Log.Debug("object cleaned up", zap.Int("worker", id), zap.String("object", task.ObjectURL))
	}
}

func (p *Pool) retryWorker() {
	for task := range p.RetryQueue {
		// 延迟重试，避免立即重试
		time.Sleep(time.Duration(task.Retry) * time.Second)

		select {
		case p.TaskQueue <- task:
		default:
			p.Log.Error("main queue full, retry dropped", zap.String("object", task.ObjectURL))
		}
	}
}
