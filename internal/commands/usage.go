package commands

// Usage is markdown so the TUI can render it; it stays readable as plain text.
const Usage = `## Commands

- ` + "`list`" + ` show every task, numbered from 1
- ` + "`todo <description>`" + ` add a plain task
- ` + "`deadline <description> /by <yyyy-MM-dd HHmm>`" + ` add a task with a due date
- ` + "`event <description> /from <yyyy-MM-dd HHmm> /to <yyyy-MM-dd HHmm>`" + ` add a task with a time window
- ` + "`mark <n>`" + ` / ` + "`unmark <n>`" + ` set task n done or not done
- ` + "`delete <n>`" + ` remove task n
- ` + "`find <keyword>`" + ` list tasks whose description contains the keyword
- ` + "`undo`" + ` / ` + "`redo`" + ` reverse or reapply the last change
- ` + "`help`" + ` show this list
- ` + "`bye`" + ` save and exit`

const Welcome = "Hello! I'm taskline.\nWhat can I do for you? Type 'help' to see every command."
