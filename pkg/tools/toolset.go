package tools

// toolDefs assembles the full static tool set. Order does not affect
// behavior; it is kept stable for readable startup logs.
func (r *Registry) toolDefs() []toolDef {
	var defs []toolDef
	defs = append(defs, r.docsTools()...)
	defs = append(defs, r.authTools()...)
	defs = append(defs, r.metadataTools()...)
	defs = append(defs, r.databaseTools()...)
	defs = append(defs, r.storageTools()...)
	defs = append(defs, r.functionTools()...)
	defs = append(defs, r.logTools()...)
	defs = append(defs, r.templateTools()...)
	defs = append(defs, r.scheduleTools()...)
	defs = append(defs, r.deployTools()...)
	return defs
}

// ToolNames returns every declared tool name with its version requirement,
// ignoring gating. Used by the CLI listing.
func (r *Registry) ToolNames() []ToolInfo {
	defs := r.toolDefs()
	out := make([]ToolInfo, 0, len(defs))
	for _, def := range defs {
		info := ToolInfo{
			Name:        def.tool.Name,
			Description: def.tool.Description,
		}
		if req, ok := versionRequirements[def.tool.Name]; ok {
			info.MinVersion = req.MinVersion
			info.MaxVersion = req.MaxVersion
		}
		out = append(out, info)
	}
	return out
}

// ToolInfo describes one declared tool for operator-facing output.
type ToolInfo struct {
	Name        string
	Description string
	MinVersion  string
	MaxVersion  string
}
