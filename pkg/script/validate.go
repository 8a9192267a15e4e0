package script

import (
	"errors"
	"strconv"

	"github.com/decker502/vnplayer/pkg/utils"
)

// Validate 对整个剧本做加载期校验
//
// 检查项：
//   - 指令类型合法
//   - 数字参数（打字速度、坐标、遮罩方向、跳转目标）可解析且在范围内
//   - 跳转目标在 [-1, N-1] 内
//   - 对话正文中的 '<' 都有对应的 '>'
//   - 移动/移除的角色在剧本中的某处被创建过
//
// 角色检查不考虑执行路径，运行时仍可能因为跳转顺序出现未知角色，
// 那种情况由引擎在派发时报错。
func Validate(s *Script) error {
	var errs []error

	spawned := make(map[string]bool)
	for _, a := range s.actions {
		if a.Kind == SpawnCharacter && a.Person != "" {
			spawned[a.Person] = true
		}
	}

	checkTarget := func(a Action, column string, target int) {
		if target < EndOfStory || target >= s.Len() {
			errs = append(errs, rowErrorf(a.Index, column, "jump target %d out of range [-1, %d]", target, s.Len()-1))
		}
	}
	checkInt := func(a Action, column, raw string) (int, bool) {
		v, err := strconv.Atoi(raw)
		if err != nil {
			errs = append(errs, rowErrorf(a.Index, column, "expected integer, got %q", raw))
			return 0, false
		}
		return v, true
	}
	checkRequired := func(a Action, column, value string) {
		if value == "" {
			errs = append(errs, rowErrorf(a.Index, column, "%s requires %s", a.Kind, column))
		}
	}
	checkCharacter := func(a Action) {
		checkRequired(a, ColumnPerson, a.Person)
		if a.Person != "" && !spawned[a.Person] {
			errs = append(errs, rowErrorf(a.Index, ColumnPerson, "character %q is never spawned", a.Person))
		}
	}

	for _, a := range s.actions {
		switch a.Kind {
		case SayText:
			if a.Value1 != "" {
				if speed, ok := checkInt(a, ColumnValue1, a.Value1); ok && speed < 0 {
					errs = append(errs, rowErrorf(a.Index, ColumnValue1, "reveal speed must not be negative, got %d", speed))
				}
			}
			if err := utils.ValidateMarkup(a.Text); err != nil {
				errs = append(errs, &RowError{Row: a.Index, Column: ColumnText, Err: err})
			}

		case PresentChoice:
			checkTarget(a, ColumnSet1, a.Choice1)
			checkTarget(a, ColumnSet2, a.Choice2)

		case Jump:
			if target, ok := checkInt(a, ColumnValue1, a.Value1); ok {
				checkTarget(a, ColumnValue1, target)
			}

		case SpawnCharacter:
			checkRequired(a, ColumnPerson, a.Person)
			checkRequired(a, ColumnValue1, a.Value1)
			checkInt(a, ColumnValue2, a.Value2)

		case MoveCharacter:
			checkCharacter(a)
			checkInt(a, ColumnValue1, a.Value1)

		case RemoveCharacter:
			checkCharacter(a)

		case ChangeBackground, PlaySound:
			checkRequired(a, ColumnValue1, a.Value1)

		case Dim:
			if v, ok := checkInt(a, ColumnValue1, a.Value1); ok && v != 0 && v != 1 {
				errs = append(errs, rowErrorf(a.Index, ColumnValue1, "dim direction must be 0 or 1, got %d", v))
			}

		case HideTextBox:

		default:
			errs = append(errs, rowErrorf(a.Index, ColumnAction, "unknown action code %d", int(a.Kind)))
		}
	}

	return errors.Join(errs...)
}
