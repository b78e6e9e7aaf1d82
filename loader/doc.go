// Package loader fills a core.Network from station and connection files.
//
// Formats:
//
//	stations.csv     Name,Line,Zone,Latitude,Longitude
//	connections.csv  StationA,StationB,Distance
//	network.yaml     stations: [{name, line, zone, lat, lon}]
//	                 connections: [{from, to, distance}]
//
// CSV lines starting with '#' and blank lines are ignored; fields are
// trimmed. A row with too few fields or an unparsable number is skipped and
// counted, never fatal, so a header row simply shows up as one skipped row.
// What the network does with each accepted row (added, duplicate, missing
// endpoint, rejected) is tallied in Stats. Only I/O and YAML syntax errors
// are returned.
package loader
