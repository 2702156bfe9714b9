package catalog

// Road polyline for route 1 (High Court - Dharapur), used by clients to
// draw the road line and interpolate bus progress between stops.
var route1Path = []Coordinate{
	{Lat: 26.191723256896395, Lng: 91.75091364604606}, // High Court area
	{Lat: 26.187856859134016, Lng: 91.74210188225084},
	{Lat: 26.18004583399204, Lng: 91.73553201473135},
	{Lat: 26.17034960036014, Lng: 91.72382333336549},
	{Lat: 26.16939127942156, Lng: 91.72264880599897},
	{Lat: 26.162297996440103, Lng: 91.71301454976145},
	{Lat: 26.158974808415493, Lng: 91.69660569704462},
	{Lat: 26.157321564999094, Lng: 91.66951573321228},
	{Lat: 26.15632697131649, Lng: 91.66626620117711},
	{Lat: 26.154979792758283, Lng: 91.66277545333338}, // Main Gate area
	{Lat: 26.152249880471572, Lng: 91.65576203341601},
	{Lat: 26.146166336017217, Lng: 91.64604649753977},
	{Lat: 26.141016635215337, Lng: 91.63969030262365},
	{Lat: 26.137339875043992, Lng: 91.62803634220342}, // Dharapur area
}

// Road polyline for route 2 (Basistha - AT-7 Boys Hall).
var route2Path = []Coordinate{
	{Lat: 26.11205485150343, Lng: 91.79773107257887},  // Basistha Chariali
	{Lat: 26.111469144653626, Lng: 91.7495224375283},  // Lokhora
	{Lat: 26.115502000355363, Lng: 91.71961162304586}, // ISBT
	{Lat: 26.12264518598184, Lng: 91.6856471675498},   // Boragaon
	{Lat: 26.131860030886898, Lng: 91.6738097434523},  // Tetelia
	{Lat: 26.15731598395476, Lng: 91.66941229420814},  // Jalukbari approach
	{Lat: 26.15636657640306, Lng: 91.66639549144122},
	{Lat: 26.15492313442553, Lng: 91.6628466168699},
	{Lat: 26.14921660741878, Lng: 91.65451999108274},
}

var schedule = map[RouteKey]Route{
	Route1: {
		Name: "Route 1: High Court - Dharapur",
		Path: route1Path,
		Stops: []Stop{
			{Name: "High Court", Lat: 26.1885, Lng: 91.7535},
			{Name: "Panbazar", Lat: 26.1834, Lng: 91.7475},
			{Name: "Fancy Bazar", Lat: 26.1805, Lng: 91.7405},
			{Name: "Bharalumukh", Lat: 26.1705, Lng: 91.7305},
			{Name: "Santipur", Lat: 26.1655, Lng: 91.7255},
			{Name: "Kamakhya Gate", Lat: 26.1605, Lng: 91.7105},
			{Name: "Maligaon Chariali", Lat: 26.1575, Lng: 91.7005},
			{Name: "Guest House", Lat: 26.1565, Lng: 91.6685},
			{Name: "NAB", Lat: 26.1558, Lng: 91.6655},
			{Name: "Main Gate", Lat: 26.1553, Lng: 91.6627},
			{Name: "Satmile", Lat: 26.1505, Lng: 91.6555},
			{Name: "Forest School Gate", Lat: 26.1455, Lng: 91.6505},
			{Name: "Lankeshwar", Lat: 26.1425, Lng: 91.6485},
			{Name: "Dharapur", Lat: 26.1385, Lng: 91.6405},
		},
		StopsReturn: []Stop{
			{Name: "Dharapur", Lat: 26.1385, Lng: 91.6405},
			{Name: "Lankeshwar", Lat: 26.1425, Lng: 91.6485},
			{Name: "Forest School Gate", Lat: 26.1455, Lng: 91.6505},
			{Name: "Satmile", Lat: 26.1505, Lng: 91.6555},
			{Name: "Main Gate", Lat: 26.1553, Lng: 91.6627},
			{Name: "NAB", Lat: 26.1558, Lng: 91.6655},
			{Name: "Guest House", Lat: 26.1565, Lng: 91.6685},
			{Name: "Maligaon Chariali", Lat: 26.1575, Lng: 91.7005},
			{Name: "Santipur", Lat: 26.1655, Lng: 91.7255},
			{Name: "Bharalumukh", Lat: 26.1705, Lng: 91.7305},
			{Name: "Fancy Bazar", Lat: 26.1805, Lng: 91.7405},
			{Name: "Panbazar", Lat: 26.1834, Lng: 91.7475},
			{Name: "High Court", Lat: 26.1885, Lng: 91.7535},
		},
	},
	Route2: {
		Name: "Route 2: Basistha Chariali - AT-7 Boys Hall",
		Path: route2Path,
		Stops: []Stop{
			{Name: "Basistha Chariali", Lat: 26.1085, Lng: 91.7885},
			{Name: "Lokhora", Lat: 26.1125, Lng: 91.7505},
			{Name: "ISBT", Lat: 26.1155, Lng: 91.7205},
			{Name: "Garchuk", Lat: 26.1165, Lng: 91.7005},
			{Name: "Boragaon", Lat: 26.1205, Lng: 91.6905},
			{Name: "Tetelia", Lat: 26.1355, Lng: 91.6705},
			{Name: "GST House", Lat: 26.1505, Lng: 91.6655},
			{Name: "NAB", Lat: 26.1558, Lng: 91.6655},
			{Name: "GU Main Gate", Lat: 26.1553, Lng: 91.6627},
			{Name: "AT-7 Boys Hall", Lat: 26.1545, Lng: 91.6605},
		},
		StopsReturn: []Stop{
			{Name: "AT-7 Boys Hall", Lat: 26.1545, Lng: 91.6605},
			{Name: "GU Main Gate", Lat: 26.1553, Lng: 91.6627},
			{Name: "NAB", Lat: 26.1558, Lng: 91.6655},
			{Name: "GST House", Lat: 26.1505, Lng: 91.6655},
			{Name: "Tetelia", Lat: 26.1355, Lng: 91.6705},
			{Name: "ISBT", Lat: 26.1155, Lng: 91.7205},
			{Name: "Lokhora", Lat: 26.1125, Lng: 91.7505},
			{Name: "Basistha Chariali", Lat: 26.1085, Lng: 91.7885},
		},
	},
}

var roster = []string{
	"R1-Bus1 (Route 1)",
	"R1-Bus2 (Route 1)",
	"R2-Bus1 (Route 2)",
	"R2-Bus2 (Route 2)",
}
