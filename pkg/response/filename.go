package response

import "net/url"

// ContentDisposition 生成带 UTF-8 文件名的 attachment 头
// 文件名含土耳其语字符，使用 RFC 5987 编码
func ContentDisposition(filename string) string {
	return "attachment; filename*=UTF-8''" + url.PathEscape(filename)
}
