package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func stringProp(description string) map[string]interface{} {
	return map[string]interface{}{"type": "string", "description": description}
}

func integerProp(description string) map[string]interface{} {
	return map[string]interface{}{"type": "integer", "description": description}
}

var bboxProp = stringProp("Bounding box as \"minLat,minLon,maxLat,maxLon\" in WGS84 degrees")

var typesProp = map[string]interface{}{
	"type":        "array",
	"items":       map[string]interface{}{"type": "string"},
	"description": "f_type values to keep. Defaults to the configured feature types",
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Segmentation
		{
			Name:        "segment_map",
			Description: "Run the segmentation pipeline over a directory holding AM_Detailed.png, boundaries.png, routes.png and satellite.png (plus AM_with_roads.png when removing structures). Writes segmented.jpg and the numbered subresults.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"dir":        stringProp("Directory containing the co-registered map layers"),
					"output_dir": stringProp("Directory for segmented.jpg and subresults/. Defaults to dir"),
					"remove_structures": map[string]interface{}{
						"type":        "boolean",
						"description": "Paint buildings from AM_with_roads.png red before route classification",
					},
				},
				"required": []string{"dir"},
			},
		},
		{
			Name:        "sample_map_color",
			Description: "Report a map layer's size and format, then sample pixels and report RGB, HSV and which segmentation colour ranges each pixel falls into.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": stringProp("Absolute path to the image file"),
					"points": map[string]interface{}{
						"type": "array",
						"items": map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"x":     map[string]interface{}{"type": "integer"},
								"y":     map[string]interface{}{"type": "integer"},
								"label": map[string]interface{}{"type": "string", "description": "Optional label for this point"},
							},
							"required": []string{"x", "y"},
						},
						"description": "Array of points to sample",
					},
				},
				"required": []string{"path", "points"},
			},
		},
		{
			Name:        "view_stage",
			Description: "Return a region of a pipeline image (for example subresults/019_AM_Contours.png) as base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": stringProp("Absolute path to the image file"),
					"x1":   integerProp("Left edge X coordinate (0-based)"),
					"y1":   integerProp("Top edge Y coordinate (0-based)"),
					"x2":   integerProp("Right edge X coordinate (exclusive). 0 means the image width"),
					"y2":   integerProp("Bottom edge Y coordinate (exclusive). 0 means the image height"),
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional scale factor (e.g., 2.0 to double size). Default 1.0",
						"default":     1.0,
					},
				},
				"required": []string{"path"},
			},
		},

		// Evaluation
		{
			Name:        "shapes_to_mask",
			Description: "Rasterise ground-truth shapes (shapefile or GeoJSON) into a black-on-white mask covering the bounding box.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"shapes": stringProp("Path to a .shp or .geojson file"),
					"bbox":   bboxProp,
					"width":  integerProp("Mask width in pixels"),
					"height": integerProp("Mask height in pixels"),
					"types":  typesProp,
					"output": stringProp("Where to write the mask. Defaults to mask.jpg in the output directory"),
				},
				"required": []string{"shapes", "bbox", "width", "height"},
			},
		},
		{
			Name:        "compare_masks",
			Description: "Score a predicted mask against a ground-truth mask. Black pixels are positives. Returns the confusion matrix with precision, recall and accuracy.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"prediction":   stringProp("Path to the predicted mask"),
					"ground_truth": stringProp("Path to the ground-truth mask"),
					"result_map":   stringProp("Optional path for the colour-coded TP/FP/FN/TN map"),
					"chart":        stringProp("Optional path for the confusion matrix chart"),
				},
				"required": []string{"prediction", "ground_truth"},
			},
		},
		{
			Name:        "overlay_shapes",
			Description: "Draw ground-truth shapes over a satellite image covering the bounding box.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"image":  stringProp("Path to the satellite image"),
					"shapes": stringProp("Path to a .shp or .geojson file"),
					"bbox":   bboxProp,
					"types":  typesProp,
					"output": stringProp("Where to write the overlay"),
					"fill_opacity": map[string]interface{}{
						"type":        "number",
						"description": "Fill opacity in [0,1]. Defaults to the configured overlay opacity",
					},
				},
				"required": []string{"image", "shapes", "bbox", "output"},
			},
		},

		// Fetching
		{
			Name:        "fetch_map_layers",
			Description: "Download the five WMS layers the pipeline needs for a bounding box from Dataforsyningen. Failed layers are reported and skipped.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"bbox":   bboxProp,
					"width":  integerProp("Layer width in pixels"),
					"height": integerProp("Layer height in pixels"),
					"dir":    stringProp("Directory to write the layers to"),
				},
				"required": []string{"bbox", "width", "height", "dir"},
			},
		},
	}
}
