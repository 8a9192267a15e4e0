package script

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"strconv"
	"strings"
)

// 剧本文件的列名
const (
	ColumnAction = "action"
	ColumnPerson = "person"
	ColumnText   = "text"
	ColumnValue1 = "value1"
	ColumnValue2 = "value2"
	ColumnSet1   = "set1"
	ColumnSet2   = "set2"
)

const (
	// FieldSeparator 字段分隔符
	FieldSeparator = "|"

	// maxLineLength 单行最大字节数
	maxLineLength = 1 << 20
)

// Columns 剧本文件必须包含的列（顺序不限）
var Columns = []string{
	ColumnAction, ColumnPerson, ColumnText, ColumnValue1, ColumnValue2, ColumnSet1, ColumnSet2,
}

// Load 从文件系统加载并校验剧本
//
// 参数：
//   - fsys: 资源文件系统（通常为 os.DirFS(resource_dir) 或嵌入的 data 目录）
//   - path: 剧本路径（如 "story/sb.csv"）
//
// 返回：
//   - *Script: 通过校验的剧本
//   - error: 打开失败，或所有行错误合并后的错误
func Load(fsys fs.FS, path string) (*Script, error) {
	file, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open script %s: %w", path, err)
	}
	defer file.Close()

	s, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("failed to load script %s: %w", path, err)
	}

	log.Printf("[Script] Loaded %s: %d actions", path, s.Len())
	return s, nil
}

// Parse 解析以 '|' 分隔、带表头的剧本，并执行 Validate
//
// 文件格式：
//
//	action|person|text|value1|value2|set1|set2
//	3|Alice||alice.png|100||
//	0|Alice|Hello <b>there</b>|2|||
//	1|||Yes|No|5|8
//
// 每一行的错误都会被收集，最终通过 errors.Join 一次性返回
func Parse(r io.Reader) (*Script, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	header, ok := nextRecord(scanner)
	if !ok {
		if err := scanner.Err(); err != nil {
			return nil, &RowError{Row: -1, Err: err}
		}
		return nil, &RowError{Row: -1, Err: errors.New("empty script")}
	}

	columns, err := indexColumns(header)
	if err != nil {
		return nil, err
	}

	var (
		actions []Action
		errs    []error
	)
	for row := 0; ; row++ {
		record, ok := nextRecord(scanner)
		if !ok {
			if err := scanner.Err(); err != nil {
				errs = append(errs, &RowError{Row: row, Err: err})
			}
			break
		}

		action, rowErrs := decodeRow(row, record, columns)
		errs = append(errs, rowErrs...)
		actions = append(actions, action)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	s := New(actions...)
	if err := Validate(s); err != nil {
		return nil, err
	}
	return s, nil
}

// nextRecord 读取下一个非空行并按 '|' 切分
// 引号没有特殊含义，按普通字符保留
func nextRecord(scanner *bufio.Scanner) ([]string, bool) {
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		return strings.Split(line, FieldSeparator), true
	}
	return nil, false
}

// indexColumns 建立列名到下标的映射，并检查必需列
func indexColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(name))
		// 去掉 UTF-8 BOM（部分表格软件导出时会附带）
		name = strings.TrimPrefix(name, "\ufeff")
		columns[name] = i
	}

	var missing []string
	for _, name := range Columns {
		if _, ok := columns[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, &RowError{Row: -1, Err: fmt.Errorf("missing columns: %s", strings.Join(missing, ", "))}
	}
	return columns, nil
}

// decodeRow 将一行记录转换为 Action
func decodeRow(row int, record []string, columns map[string]int) (Action, []error) {
	field := func(name string) string {
		i := columns[name]
		if i >= len(record) {
			return ""
		}
		return record[i]
	}

	var errs []error
	action := Action{
		Index:  row,
		Person: field(ColumnPerson),
		Text:   field(ColumnText),
		Value1: strings.TrimSpace(field(ColumnValue1)),
		Value2: strings.TrimSpace(field(ColumnValue2)),
	}

	code := strings.TrimSpace(field(ColumnAction))
	kind, err := strconv.Atoi(code)
	switch {
	case code == "":
		errs = append(errs, rowErrorf(row, ColumnAction, "missing action code"))
	case err != nil:
		errs = append(errs, rowErrorf(row, ColumnAction, "non-numeric action code %q", code))
	case !Kind(kind).Valid():
		errs = append(errs, rowErrorf(row, ColumnAction, "unknown action code %d", kind))
	}
	action.Kind = Kind(kind)

	// set1/set2 只对 PresentChoice 有意义，其他行允许为空或任意值
	if action.Kind == PresentChoice {
		for _, c := range []struct {
			name string
			dst  *int
		}{
			{ColumnSet1, &action.Choice1},
			{ColumnSet2, &action.Choice2},
		} {
			raw := strings.TrimSpace(field(c.name))
			target, err := strconv.Atoi(raw)
			if err != nil {
				errs = append(errs, rowErrorf(row, c.name, "choice target must be an integer, got %q", raw))
				continue
			}
			*c.dst = target
		}
	}

	return action, errs
}
