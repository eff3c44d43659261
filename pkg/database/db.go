package database

// ConversionStore 定义文件转换状态存储接口
type ConversionStore interface {
	AddConvertedFile(path, checksum string) error        // 记录文件的某个内容版本已转换
	IsFileConverted(path, checksum string) (bool, error) // 检查文件的该内容版本是否已转换
	Close() error                                        // 关闭数据库连接
}
