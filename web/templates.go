package web

import "html/template"

func newTemplates() *template.Template {
	return template.Must(template.New("page").Parse(pageTemplate))
}

const pageTemplate = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>Tasks</title>
  <style>
    :root {
      color-scheme: light;
    }
    body {
      margin: 0;
      font-family: "Inter", "Helvetica Neue", sans-serif;
      color: #1f2933;
      background: radial-gradient(circle at top left, #eef2f7 0%, #f8fafc 55%, #f1f5f9 100%);
    }
    header {
      padding: 16px 24px;
      border-bottom: 1px solid #cbd5e1;
      background: rgba(255, 255, 255, 0.72);
      backdrop-filter: blur(6px);
    }
    header h1 {
      margin: 0 0 8px 0;
      font-size: 20px;
      letter-spacing: 0;
    }
    .tabs {
      display: flex;
      gap: 12px;
    }
    .tab {
      padding: 8px 14px;
      border-radius: 6px;
      text-decoration: none;
      color: #475569;
      border: 1px solid transparent;
    }
    .tab.active {
      color: #0f172a;
      border-color: #94a3b8;
      background: #e2e8f0;
      font-weight: 600;
    }
    main {
      display: flex;
      gap: 18px;
      padding: 18px 24px 28px;
    }
    .pane {
      background: #ffffff;
      border: 1px solid #cbd5e1;
      border-radius: 10px;
      box-shadow: 0 8px 24px rgba(15, 23, 42, 0.06);
    }
    .list-pane {
      width: 35%;
      min-width: 240px;
      padding: 16px;
      display: flex;
      flex-direction: column;
      gap: 12px;
    }
    .detail-pane {
      flex: 1;
      padding: 18px 22px 22px;
    }
    .list-actions {
      display: flex;
      justify-content: space-between;
      align-items: center;
      gap: 12px;
    }
    .button-link {
      display: inline-block;
      padding: 6px 12px;
      border-radius: 8px;
      border: 1px solid #cbd5e1;
      background: #f1f5f9;
      text-decoration: none;
      color: #1f2933;
      font-size: 14px;
    }
    .item-list {
      list-style: none;
      padding: 0;
      margin: 0;
      display: flex;
      flex-direction: column;
      gap: 8px;
      overflow-y: auto;
    }
    .list-item a {
      display: block;
      padding: 10px 12px;
      border-radius: 10px;
      border: 1px solid transparent;
      text-decoration: none;
      color: inherit;
    }
    .list-item.active a {
      border-color: #94a3b8;
      background: #e0f2fe;
    }
    .item-title {
      font-weight: 600;
      display: block;
    }
    .item-meta {
      color: #64748b;
      font-size: 12px;
    }
    .field {
      display: flex;
      flex-direction: column;
      gap: 6px;
      margin-bottom: 12px;
    }
    input[type="text"],
    input[type="datetime-local"] {
      width: 100%;
      padding: 8px 10px;
      border-radius: 8px;
      border: 1px solid #cbd5e1;
      font-family: inherit;
      font-size: 14px;
      background: #ffffff;
      box-sizing: border-box;
    }
    .actions {
      display: flex;
      flex-wrap: wrap;
      gap: 10px;
      margin-top: 16px;
    }
    button {
      padding: 8px 14px;
      border-radius: 8px;
      border: 1px solid #94a3b8;
      background: #e2e8f0;
      font-family: inherit;
      cursor: pointer;
    }
    button.danger {
      background: #fee2e2;
      border-color: #fca5a5;
    }
    .readonly {
      display: grid;
      grid-template-columns: 100px 1fr;
      gap: 6px 12px;
      font-size: 14px;
      margin: 16px 0 8px;
    }
    .readonly dt {
      font-weight: 600;
      color: #334155;
    }
    .readonly dd {
      margin: 0;
      color: #1f2933;
    }
    .error {
      padding: 10px 12px;
      border-radius: 8px;
      background: #fee2e2;
      border: 1px solid #fca5a5;
      margin-bottom: 12px;
      color: #7f1d1d;
    }
    .muted {
      color: #64748b;
    }
    .done .item-title {
      text-decoration: line-through;
      color: #94a3b8;
    }
    .overdue {
      color: #b91c1c;
    }
    .inline {
      display: inline;
    }
    .confirm {
      display: flex;
      align-items: center;
      gap: 8px;
      font-size: 14px;
    }
    @media (max-width: 900px) {
      main {
        flex-direction: column;
      }
      .list-pane {
        width: auto;
      }
    }
  </style>
</head>
<body>
  <header>
    <h1>Tasks</h1>
    <nav class="tabs">
      {{range .Filters}}
        <a class="tab {{if .Active}}active{{end}}" href="/web/tasks?filter={{.Value}}">{{.Label}}</a>
      {{end}}
    </nav>
  </header>
  <main>
    <section class="pane list-pane">
      {{if .CreateError}}<div class="error">{{.CreateError}}</div>{{end}}
      <form method="post" action="/web/tasks/create">
        <div class="field">
          <label for="create-text">New task</label>
          <input id="create-text" type="text" name="text" value="{{.CreateForm.Text}}" autofocus>
        </div>
        <div class="field">
          <label for="create-datetime">Reminder</label>
          <input id="create-datetime" type="datetime-local" name="datetime" value="{{.CreateForm.Datetime}}" min="{{.MinDatetime}}">
        </div>
        <div class="actions">
          <button type="submit">Add task</button>
        </div>
      </form>
      <div class="list-actions">
        <strong>{{len .Tasks}} of {{.Total}}</strong>
        <form class="inline" method="post" action="/web/tasks/clear">
          <button class="danger" type="submit">Clear</button>
        </form>
      </div>
      <ul class="item-list density-{{.Density}}">
        {{range .Tasks}}
          <li class="list-item {{if eq .ID $.SelectedID}}active{{end}} {{if .Completed}}done{{end}}">
            <a href="/web/tasks?id={{.ID}}">
              <span class="item-title">{{.Text}}</span>
              <span class="item-meta {{if .Overdue}}overdue{{end}}">{{.Reminder}} · {{.Due}}</span>
            </a>
          </li>
        {{else}}
          <li class="muted">No tasks found.</li>
        {{end}}
      </ul>
    </section>
    <section class="pane detail-pane">
      {{if .EditError}}<div class="error">{{.EditError}}</div>{{end}}
      {{if eq .Confirm "clear"}}
        <p>{{.ConfirmMessage}}</p>
        <form method="post" action="/web/tasks/clear">
          <input type="hidden" name="confirm" value="yes">
          <div class="actions">
            <button class="danger" type="submit">Clear</button>
            <a class="button-link" href="/web/tasks">Cancel</a>
          </div>
        </form>
      {{else if .Selected}}
        {{if eq .Confirm "delete"}}
          <p>{{.ConfirmMessage}}</p>
          <form method="post" action="/web/tasks/delete?id={{.Selected.ID}}">
            <input type="hidden" name="confirm" value="yes">
            <div class="actions">
              <button class="danger" type="submit">Delete</button>
              <a class="button-link" href="/web/tasks?id={{.Selected.ID}}">Cancel</a>
            </div>
          </form>
        {{end}}
        <h2>Edit Task</h2>
        <form method="post" action="/web/tasks/update?id={{.Selected.ID}}">
          <div class="field">
            <label for="edit-text">Text</label>
            <input id="edit-text" type="text" name="text" value="{{.EditForm.Text}}">
          </div>
          <div class="field">
            <label for="edit-datetime">Reminder</label>
            <input id="edit-datetime" type="datetime-local" name="datetime" value="{{.EditForm.Datetime}}" min="{{.MinDatetime}}">
          </div>
          <div class="actions">
            <button type="submit">Save changes</button>
          </div>
        </form>
        <dl class="readonly">
          <dt>ID</dt><dd>{{.Selected.ID}}</dd>
          <dt>Status</dt><dd>{{if .Selected.Completed}}completed{{else}}active{{end}}</dd>
          <dt>Reminder</dt><dd>{{.Selected.Reminder}}</dd>
          <dt>Due</dt><dd class="{{if .Selected.Overdue}}overdue{{end}}">{{.Selected.Due}}</dd>
        </dl>
        <div class="actions">
          <form class="inline" method="post" action="/web/tasks/toggle?id={{.Selected.ID}}">
            <button type="submit">{{if .Selected.Completed}}Mark active{{else}}Mark done{{end}}</button>
          </form>
          <form class="inline" method="post" action="/web/tasks/delete?id={{.Selected.ID}}">
            <button class="danger" type="submit">Delete</button>
          </form>
        </div>
      {{else}}
        <p class="muted">No task selected.</p>
      {{end}}
    </section>
  </main>
</body>
</html>
`
