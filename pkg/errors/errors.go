package errors

import "errors"

// ErrOptimisticLock 乐观锁冲突：会话快照已被其他请求修改
var ErrOptimisticLock = errors.New("会话状态已被其他操作修改，请刷新后重试")

// ErrStoreUnavailable 会话存储后端不可用（如 Redis 断开）
var ErrStoreUnavailable = errors.New("会话存储暂不可用")
