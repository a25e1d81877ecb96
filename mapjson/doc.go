package mapjson

//Package mapjson implements the transmision of density maps, and of the data
//needed to compute them, as JSON. Its planned use is the communication of xtal
//programs with other, independent programs, such as PyMOL plugins, which can be
//written in languages other than Go, as long as those languages implement a
//way of serializing and unserializing JSON data.
//The calling program sends a Request, with the cell, the symmetry operators and
//the reflections, and collects the map, for instance, via UNIX pipes.
