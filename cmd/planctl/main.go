// planctl 运维命令行：数据库迁移、离线预览学年日历、签发与吊销运维 Token
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"go.uber.org/zap"

	"github.com/bagerxx/OgretmenPlan/config"
	"github.com/bagerxx/OgretmenPlan/internal/dto"
	"github.com/bagerxx/OgretmenPlan/internal/repository"
	"github.com/bagerxx/OgretmenPlan/internal/service"
	"github.com/bagerxx/OgretmenPlan/pkg/database"
	"github.com/bagerxx/OgretmenPlan/pkg/jwt"
	applogger "github.com/bagerxx/OgretmenPlan/pkg/logger"
	"github.com/bagerxx/OgretmenPlan/pkg/redis"
)

const usage = `用法: planctl <命令> [参数]

命令:
  migrate   执行数据库迁移（-down N 回滚 N 步）
  preview   离线预览学年日历，不连接数据库
  token     签发运维 Access Token
  revoke    吊销 Token（写入 Redis 黑名单）
`

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "planctl: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	if len(args) == 0 {
		fmt.Fprint(stdout, usage)
		return nil
	}

	switch args[0] {
	case "migrate":
		return runMigrate(args[1:], stdout)
	case "preview":
		return runPreview(args[1:], stdout)
	case "token":
		return runToken(args[1:], stdout)
	case "revoke":
		return runRevoke(args[1:], stdout)
	case "help", "-h", "--help":
		fmt.Fprint(stdout, usage)
		return nil
	default:
		return fmt.Errorf("未知命令 %q\n\n%s", args[0], usage)
	}
}

// ────────────────────── migrate ──────────────────────

func runMigrate(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("migrate", flag.ContinueOnError)
	fs.SetOutput(stdout)
	configPath := fs.String("config", "", "配置文件路径")
	down := fs.Int("down", 0, "回滚的迁移步数，0 表示执行全部未执行的迁移")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, logger, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	defer logger.Sync()

	db, err := database.NewDB(&cfg.Database, cfg.Log.Level, logger)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if *down > 0 {
		return database.RollbackMigrations(sqlDB, *down, logger)
	}
	return database.RunMigrations(sqlDB, logger)
}

// ────────────────────── preview ──────────────────────

// holidayFlags 可重复的 -holiday category:start[:end]
type holidayFlags []dto.HolidayRequest

func (h *holidayFlags) String() string { return fmt.Sprint(*h) }

func (h *holidayFlags) Set(v string) error {
	parts := strings.Split(v, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return fmt.Errorf("假期格式应为 category:start[:end]，实际 %q", v)
	}
	req := dto.HolidayRequest{Category: parts[0], Start: parts[1]}
	if len(parts) == 3 {
		req.End = parts[2]
	}
	*h = append(*h, req)
	return nil
}

func runPreview(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("preview", flag.ContinueOnError)
	fs.SetOutput(stdout)
	year := fs.Int("year", 0, "学年起始年份，默认取 -start 的年份")
	start := fs.String("start", "", "学年开始日期 YYYY-MM-DD")
	end := fs.String("end", "", "学年结束日期 YYYY-MM-DD")
	semesterStart := fs.String("semester-start", "", "寒假开始日期")
	semesterEnd := fs.String("semester-end", "", "寒假结束日期")
	religiousA := fs.String("religious-a", "", "Ramazan Bayramı 锚定日")
	religiousB := fs.String("religious-b", "", "Kurban Bayramı 锚定日")
	var holidays holidayFlags
	fs.Var(&holidays, "holiday", "其他假期 category:start[:end]，可重复")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *start == "" || *end == "" {
		return fmt.Errorf("preview 需要 -start 与 -end")
	}

	if *semesterStart != "" || *semesterEnd != "" {
		holidays = append(holidays, dto.HolidayRequest{Category: "semester_break", Start: *semesterStart, End: *semesterEnd})
	}
	if *religiousA != "" {
		holidays = append(holidays, dto.HolidayRequest{Category: "religious_a", Start: *religiousA})
	}
	if *religiousB != "" {
		holidays = append(holidays, dto.HolidayRequest{Category: "religious_b", Start: *religiousB})
	}

	req := &dto.GenerateCalendarRequest{Year: *year, StartDate: *start, EndDate: *end, Holidays: holidays}
	if req.Year == 0 {
		if t, err := time.Parse("2006-01-02", *start); err == nil {
			req.Year = t.Year()
		}
	}

	svc := service.NewCalendarService(repository.NewRepository(nil), nil, 0, zap.NewNop())
	result, err := svc.Preview(context.Background(), req)
	if err != nil {
		return err
	}
	return printPreview(stdout, result)
}

func printPreview(out io.Writer, result *dto.PreviewResponse) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tHAFTA\tTARİH\tTÜR\tDÖNEM")
	for _, w := range result.Weeks {
		seq := "-"
		if w.Sequence != nil {
			seq = fmt.Sprint(*w.Sequence)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", w.Index, seq, w.Label, w.Type, w.Term)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	s := result.Summary
	fmt.Fprintf(out, "\n教学周 %d（第一学期 %d，第二学期 %d），假期周 %d\n",
		s.TeachingWeekCount, s.FirstTermWeekCount, s.SecondTermWeekCount, s.HolidayWeekCount)
	return nil
}

// ────────────────────── token ──────────────────────

func runToken(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("token", flag.ContinueOnError)
	fs.SetOutput(stdout)
	configPath := fs.String("config", "", "配置文件路径")
	user := fs.String("user", "", "用户 ID")
	role := fs.String("role", jwt.RoleAdmin, "角色 admin|teacher")
	school := fs.String("school", "", "学校 ID（可选）")
	ttl := fs.Duration("ttl", 0, "有效期，默认取 auth.access_token_ttl")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *user == "" {
		return fmt.Errorf("token 需要 -user")
	}
	if *role != jwt.RoleAdmin && *role != jwt.RoleTeacher {
		return fmt.Errorf("未知角色 %q", *role)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	token, claims, err := jwt.NewManager(&cfg.Auth).GenerateAccessToken(*user, *role, *school, *ttl)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "jti:        %s\nexpires_at: %s\n\n%s\n", claims.ID, claims.ExpiresAt.Time.Format(time.RFC3339), token)
	return nil
}

// ────────────────────── revoke ──────────────────────

func runRevoke(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("revoke", flag.ContinueOnError)
	fs.SetOutput(stdout)
	configPath := fs.String("config", "", "配置文件路径")
	jti := fs.String("jti", "", "要吊销的 Token ID")
	ttl := fs.Duration("ttl", 0, "黑名单保留时长，默认取 auth.access_token_ttl")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *jti == "" {
		return fmt.Errorf("revoke 需要 -jti")
	}

	cfg, logger, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	defer logger.Sync()

	keep := *ttl
	if keep <= 0 {
		keep = cfg.Auth.AccessTokenTTL
	}

	rdb, err := redis.NewClient(&cfg.Redis, logger)
	if err != nil {
		return err
	}
	defer rdb.Close()

	if err := rdb.BlacklistToken(context.Background(), *jti, keep); err != nil {
		return fmt.Errorf("写入黑名单失败: %w", err)
	}
	fmt.Fprintf(stdout, "已吊销 %s（保留 %s）\n", *jti, keep)
	return nil
}

func loadConfig(path string) (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}
